package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/position"
)

func toPositionDTO(p position.Position) dto.Position {
	return dto.Position{
		PositionID: p.ID,
		ProjectID:  p.ProjectID,
		CompanyID:  p.CompanyID,
		Title:      p.Title,
		Level:      string(p.Level),
		IsActive:   p.IsActive,
		CreatedBy:  p.CreatedBy,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (h *Handler) PositionIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "query")
	if !ok {
		return
	}

	page, err := h.PositionSvc.List(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.Position]{
		Items: make([]dto.Position, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, toPositionDTO(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PositionFind(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.PositionSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": toPositionDTO(res)})
}

func (h *Handler) PositionCreate(c *gin.Context) {
	var body dto.PositionCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.ProjectID == "" || body.CompanyID == "" || body.Title == "" || body.Level == "" {
		h.badRequest(c, "project_id, company_id, title, level are required")
		return
	}
	if !validID(body.ProjectID) {
		h.badRequest(c, "project_id is not valid")
		return
	}
	if !validID(body.CompanyID) {
		h.badRequest(c, "company_id is not valid")
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	res, err := h.PositionSvc.Create(c.Request.Context(), position.Position{
		ProjectID: body.ProjectID,
		CompanyID: body.CompanyID,
		Title:     body.Title,
		Level:     position.Level(strings.ToLower(strings.TrimSpace(body.Level))),
		IsActive:  isActive,
		CreatedBy: currentUser(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"position": toPositionDTO(res)})
}

func (h *Handler) PositionUpdate(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.PositionUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if !validOptionalID(body.ProjectID) {
		h.badRequest(c, "project_id is not valid")
		return
	}
	if !validOptionalID(body.CompanyID) {
		h.badRequest(c, "company_id is not valid")
		return
	}

	patch := position.Patch{
		ProjectID: body.ProjectID,
		CompanyID: body.CompanyID,
		Title:     body.Title,
		IsActive:  body.IsActive,
	}
	if body.Level != nil {
		lvl := position.Level(strings.ToLower(strings.TrimSpace(*body.Level)))
		patch.Level = &lvl
	}

	res, err := h.PositionSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"position": toPositionDTO(res)})
}

func (h *Handler) PositionDelete(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.PositionSvc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
