package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/manager"
)

type assignFunc func(ctx context.Context, id, userID, actor string) (manager.Manager, error)

func (h *Handler) CompanyAssignManager(c *gin.Context) {
	h.assignManager(c, h.CompanySvc.AssignManager)
}

func (h *Handler) PositionAssignManager(c *gin.Context) {
	h.assignManager(c, h.PositionSvc.AssignManager)
}

func (h *Handler) assignManager(c *gin.Context, assign assignFunc) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.ManagerAssign
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.ManagerID == "" {
		h.badRequest(c, "manager_id is required")
		return
	}
	if !validID(body.ManagerID) {
		h.badRequest(c, "manager_id is not valid")
		return
	}

	m, err := assign(c.Request.Context(), id, body.ManagerID, currentUser(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"manager": dto.Manager{
		ManagerID: m.ID,
		Entity:    string(m.Entity),
		EntityID:  m.EntityID,
		UserID:    m.UserID,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}})
}
