package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/notification"
)

func toNotificationDTO(n notification.Notification) dto.Notification {
	return dto.Notification{
		NotificationID: n.ID,
		Title:          n.Title,
		Body:           n.Body,
		UserID:         n.UserID,
		Step:           string(n.Step),
		Entity:         string(n.Entity),
		EntityID:       n.EntityID,
		Attempts:       n.Attempts,
		SentAt:         n.SentAt,
		Response:       n.Response,
		CreatedBy:      n.CreatedBy,
		CreatedAt:      n.CreatedAt,
	}
}

func (h *Handler) NotificationIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "q")
	if !ok {
		return
	}

	page, err := h.NotificationSvc.List(c.Request.Context(), notification.Filter{
		PageRequest: p,
		UserID:      c.Query("user_id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.Notification]{
		Items: make([]dto.Notification, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, n := range page.Items {
		resp.Items = append(resp.Items, toNotificationDTO(n))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) NotificationCreate(c *gin.Context) {
	var body dto.NotificationCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.UserID == "" || body.Step == "" || body.Entity == "" {
		h.badRequest(c, "user_id, step, entity are required")
		return
	}
	if !validID(body.EntityID) {
		h.badRequest(c, "entity_id is not valid")
		return
	}

	n, err := h.NotificationSvc.Create(c.Request.Context(), notification.Notification{
		Title:     body.Title,
		Body:      body.Body,
		UserID:    body.UserID,
		Step:      notification.Step(body.Step),
		Entity:    notification.Entity(body.Entity),
		EntityID:  body.EntityID,
		CreatedBy: currentUser(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"notification": toNotificationDTO(n)})
}

func (h *Handler) NotificationMarkSent(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.NotificationSent
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}

	n, err := h.NotificationSvc.MarkSent(c.Request.Context(), id, body.Response)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": toNotificationDTO(n)})
}
