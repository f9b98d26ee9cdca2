package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/project"
)

func toProjectDTO(p project.Project) dto.Project {
	return dto.Project{
		ProjectID:   p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *Handler) ProjectIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "q")
	if !ok {
		return
	}
	companyID := c.Query("company_id")
	if companyID != "" && !validID(companyID) {
		h.badRequest(c, "company_id is not valid")
		return
	}

	page, err := h.ProjectSvc.List(c.Request.Context(), project.Filter{PageRequest: p, CompanyID: companyID})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.Project]{
		Items: make([]dto.Project, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, toProjectDTO(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ProjectFind(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.ProjectSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": toProjectDTO(res)})
}

func (h *Handler) ProjectCreate(c *gin.Context) {
	var body dto.ProjectCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.CompanyID == "" || strings.TrimSpace(body.Name) == "" {
		h.badRequest(c, "company_id and name are required")
		return
	}
	if !validID(body.CompanyID) {
		h.badRequest(c, "company_id is not valid")
		return
	}

	res, err := h.ProjectSvc.Create(c.Request.Context(), project.Project{
		CompanyID:   body.CompanyID,
		Name:        body.Name,
		Description: strings.TrimSpace(body.Description),
		CreatedBy:   currentUser(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": toProjectDTO(res)})
}
