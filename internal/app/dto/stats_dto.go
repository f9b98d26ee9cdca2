package dto

type StatusStat struct {
	Status                  string `json:"status"`
	ResumeCount             int    `json:"resume_count"`
	AvgProcessingDurationMS *int64 `json:"avg_processing_duration_ms"`
}

type PositionStat struct {
	PositionID   string `json:"position_id"`
	ResumeCount  int    `json:"resume_count"`
	CommentTotal int    `json:"comment_total"`
}

type StatsResponse struct {
	PerStatus   []StatusStat   `json:"per_status,omitempty"`
	PerPosition []PositionStat `json:"per_position,omitempty"`
}
