package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrservice/internal/app/http/middleware"
	"hrservice/internal/domain"
)

// pageParams reads page, size and the search query. It writes a 400 and
// reports false on malformed input.
func (h *Handler) pageParams(c *gin.Context, queryKey string) (domain.PageRequest, bool) {
	p := domain.PageRequest{Page: 1, Size: domain.DefaultPageSize, Query: c.Query(queryKey)}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.badRequest(c, "page must be a positive number")
			return domain.PageRequest{}, false
		}
		p.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > domain.MaxPageSize {
			h.badRequest(c, "size must be a number between 1 and 100")
			return domain.PageRequest{}, false
		}
		p.Size = n
	}
	return p, true
}

func (h *Handler) idParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !validID(id) {
		h.badRequest(c, name+" is not valid")
		return "", false
	}
	return id, true
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validOptionalID(id *string) bool {
	return id == nil || validID(*id)
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
