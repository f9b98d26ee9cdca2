package dto

import "time"

type ResumeSummary struct {
	CommentCount     int `json:"comment_count"`
	CallHistoryCount int `json:"call_history_count"`
	FileCount        int `json:"file_count"`
}

type Resume struct {
	ResumeID             string        `json:"resume_id"`
	Firstname            string        `json:"firstname"`
	Lastname             string        `json:"lastname"`
	Email                string        `json:"email"`
	Mobile               string        `json:"mobile"`
	PositionID           *string       `json:"position_id"`
	Status               string        `json:"status"`
	StageEnteredAt       *time.Time    `json:"stage_entered_at,omitempty"`
	StageExitedAt        *time.Time    `json:"stage_exited_at,omitempty"`
	ProcessingDurationMS *int64        `json:"processing_duration_ms"`
	Summary              ResumeSummary `json:"summary"`
	FilePath             string        `json:"file_path,omitempty"`
	CreatedBy            string        `json:"created_by"`
	CreatedAt            *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time    `json:"updatedAt,omitempty"`
}

type ResumeCreate struct {
	Firstname  string  `json:"firstname"`
	Lastname   string  `json:"lastname"`
	Email      string  `json:"email"`
	Mobile     string  `json:"mobile"`
	PositionID *string `json:"position_id"`
}

type ResumeUpdate struct {
	Firstname  *string `json:"firstname"`
	Lastname   *string `json:"lastname"`
	Email      *string `json:"email"`
	Mobile     *string `json:"mobile"`
	PositionID *string `json:"position_id"`
}

type ResumeStatusUpdate struct {
	Status string `json:"status"`
}

type Comment struct {
	CommentID string     `json:"comment_id"`
	ResumeID  string     `json:"resume_id"`
	Body      string     `json:"body"`
	CreatedBy string     `json:"created_by"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type CommentCreate struct {
	Body string `json:"body"`
}

type CallHistory struct {
	CallID      string    `json:"call_id"`
	ResumeID    string    `json:"resume_id"`
	Result      string    `json:"result"`
	Description string    `json:"description"`
	CalledAt    time.Time `json:"called_at"`
	CreatedBy   string    `json:"created_by"`
}

type CallHistoryCreate struct {
	Result      string     `json:"result"`
	Description string     `json:"description"`
	CalledAt    *time.Time `json:"called_at"`
}
