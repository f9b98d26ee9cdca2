package stats

import "time"

type StatusStat struct {
	Status                string
	ResumeCount           int
	AvgProcessingDuration *time.Duration
}

type PositionStat struct {
	PositionID   string
	ResumeCount  int
	CommentTotal int
}
