package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/resume"
)

var resumeFileExt = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

func toResumeDTO(r resume.Resume) dto.Resume {
	out := dto.Resume{
		ResumeID:       r.ID,
		Firstname:      r.Firstname,
		Lastname:       r.Lastname,
		Email:          r.Email,
		Mobile:         r.Mobile,
		PositionID:     r.PositionID,
		Status:         string(r.Status),
		StageEnteredAt: r.StageEnteredAt,
		StageExitedAt:  r.StageExitedAt,
		Summary: dto.ResumeSummary{
			CommentCount:     r.Summary.CommentCount,
			CallHistoryCount: r.Summary.CallHistoryCount,
			FileCount:        r.Summary.FileCount,
		},
		FilePath:  r.FilePath,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.ProcessingDuration != nil {
		ms := r.ProcessingDuration.Milliseconds()
		out.ProcessingDurationMS = &ms
	}
	return out
}

func (h *Handler) ResumeIndex(c *gin.Context) {
	p, ok := h.pageParams(c, "q")
	if !ok {
		return
	}

	page, err := h.ResumeSvc.List(c.Request.Context(), resume.Filter{
		PageRequest: p,
		Status:      resume.Status(strings.ToLower(c.Query("status"))),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.Page[dto.Resume]{
		Items: make([]dto.Resume, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, r := range page.Items {
		resp.Items = append(resp.Items, toResumeDTO(r))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResumeFind(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.ResumeSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resume": toResumeDTO(r)})
}

func (h *Handler) ResumeCreate(c *gin.Context) {
	var body dto.ResumeCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}

	body.Firstname = strings.TrimSpace(body.Firstname)
	body.Lastname = strings.TrimSpace(body.Lastname)
	if body.Firstname == "" || body.Lastname == "" {
		h.badRequest(c, "firstname and lastname are required")
		return
	}
	if body.Email != "" && !strings.Contains(body.Email, "@") {
		h.badRequest(c, "email is not valid")
		return
	}
	if !validOptionalID(body.PositionID) {
		h.badRequest(c, "position_id is not valid")
		return
	}

	r, err := h.ResumeSvc.Create(c.Request.Context(), resume.CreateInput{
		Firstname:  body.Firstname,
		Lastname:   body.Lastname,
		Email:      strings.TrimSpace(body.Email),
		Mobile:     strings.TrimSpace(body.Mobile),
		PositionID: body.PositionID,
		CreatedBy:  currentUser(c),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"resume": toResumeDTO(r)})
}

func (h *Handler) ResumeUpdate(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.ResumeUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Email != nil && !strings.Contains(*body.Email, "@") {
		h.badRequest(c, "email is not valid")
		return
	}
	patch := resume.Patch{
		Firstname:  body.Firstname,
		Lastname:   body.Lastname,
		Email:      body.Email,
		Mobile:     body.Mobile,
		PositionID: body.PositionID,
	}
	// an empty position_id detaches the resume
	if body.PositionID != nil && *body.PositionID == "" {
		patch.PositionID = nil
		patch.ClearPosition = true
	}
	if !validOptionalID(patch.PositionID) {
		h.badRequest(c, "position_id is not valid")
		return
	}

	r, err := h.ResumeSvc.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resume": toResumeDTO(r)})
}

func (h *Handler) ResumeDelete(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	if err := h.ResumeSvc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResumeUpdateStatus(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.ResumeStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Status == "" {
		h.badRequest(c, "status is required")
		return
	}

	r, err := h.ResumeSvc.UpdateStatus(c.Request.Context(), id, resume.Status(strings.ToLower(body.Status)))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resume": toResumeDTO(r)})
}

func (h *Handler) ResumeComments(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.ResumeSvc.Comments(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := struct {
		ResumeID string        `json:"resume_id"`
		Comments []dto.Comment `json:"comments"`
	}{
		ResumeID: id,
		Comments: make([]dto.Comment, 0, len(list)),
	}
	for _, cm := range list {
		resp.Comments = append(resp.Comments, dto.Comment{
			CommentID: cm.ID,
			ResumeID:  cm.ResumeID,
			Body:      cm.Body,
			CreatedBy: cm.CreatedBy,
			CreatedAt: cm.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResumeAddComment(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.CommentCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if strings.TrimSpace(body.Body) == "" {
		h.badRequest(c, "body is required")
		return
	}

	cm, err := h.ResumeSvc.AddComment(c.Request.Context(), id, body.Body, currentUser(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": dto.Comment{
		CommentID: cm.ID,
		ResumeID:  cm.ResumeID,
		Body:      cm.Body,
		CreatedBy: cm.CreatedBy,
		CreatedAt: cm.CreatedAt,
	}})
}

func (h *Handler) ResumeAddCallHistory(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var body dto.CallHistoryCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		h.badRequest(c, "invalid JSON")
		return
	}
	if body.Result == "" {
		h.badRequest(c, "result is required")
		return
	}

	in := resume.CallHistory{
		ResumeID:    id,
		Result:      resume.CallResult(strings.ToLower(body.Result)),
		Description: strings.TrimSpace(body.Description),
		CreatedBy:   currentUser(c),
	}
	if body.CalledAt != nil {
		in.CalledAt = body.CalledAt.UTC()
	}

	ch, err := h.ResumeSvc.AddCallHistory(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"call_history": dto.CallHistory{
		CallID:      ch.ID,
		ResumeID:    ch.ResumeID,
		Result:      string(ch.Result),
		Description: ch.Description,
		CalledAt:    ch.CalledAt,
		CreatedBy:   ch.CreatedBy,
	}})
}

func (h *Handler) ResumeUploadFile(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.badRequest(c, "file is required")
		return
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !resumeFileExt[ext] {
		h.badRequest(c, "file must be a pdf, doc or docx")
		return
	}

	dir := filepath.Join(h.UploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		h.writeError(c, err)
		return
	}
	dst := filepath.Join(dir, id+"-"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		h.writeError(c, err)
		return
	}

	r, err := h.ResumeSvc.AttachFile(c.Request.Context(), id, dst)
	if err != nil {
		_ = os.Remove(dst)
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resume": toResumeDTO(r)})
}
