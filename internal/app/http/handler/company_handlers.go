package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/company"
)

func toCompanyDTO(c company.Company) dto.Company {
	return dto.Company{
		CompanyID:   c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		IsActive:    c.IsActive,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *Handler) CompanyIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "q")
	if !ok {
		return
	}

	page, err := h.CompanySvc.List(c.Request.Context(), p)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.Company]{
		Items: make([]dto.Company, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, toCompanyDTO(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CompanyFind(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	res, err := h.CompanySvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": toCompanyDTO(res)})
}

func (h *Handler) CompanyCreate(c *gin.Context) {
	var body dto.CompanyCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Name == "" {
		h.badRequest(c, "name is required")
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	res, err := h.CompanySvc.Create(c.Request.Context(), company.Company{
		Name:        body.Name,
		Description: body.Description,
		Website:     body.Website,
		IsActive:    isActive,
		CreatedBy:   currentUser(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": toCompanyDTO(res)})
}

func (h *Handler) CompanyUpdate(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.CompanyUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}

	res, err := h.CompanySvc.Update(c.Request.Context(), id, company.Patch{
		Name:        body.Name,
		Description: body.Description,
		Website:     body.Website,
		IsActive:    body.IsActive,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": toCompanyDTO(res)})
}

func (h *Handler) CompanyDelete(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.CompanySvc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
