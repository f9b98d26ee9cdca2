package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/user"
)

func toUserDTO(u user.User) dto.User {
	return dto.User{
		UserID:    u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Mobile:    u.Mobile,
		Avatar:    u.Avatar,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handler) UserIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "q")
	if !ok {
		return
	}

	page, err := h.UserSvc.List(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.User]{
		Items: make([]dto.User, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, u := range page.Items {
		resp.Items = append(resp.Items, toUserDTO(u))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UserFind(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	u, err := h.UserSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserDTO(u)})
}
