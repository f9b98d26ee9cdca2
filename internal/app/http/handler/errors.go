package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain"
)

func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		h.writeErrorBody(c, de.HTTPStatus, string(de.Code), de.Message)
		return
	}

	h.Log.Error("internal error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	h.writeErrorBody(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	h.writeErrorBody(c, http.StatusBadRequest, string(domain.ErrorCodeBadRequest), msg)
}

func (h *Handler) writeErrorBody(c *gin.Context, status int, code, msg string) {
	c.JSON(status, dto.ErrorResponse{
		Error: dto.Error{
			Code:    code,
			Message: msg,
		},
	})
}
