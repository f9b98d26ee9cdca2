package handler

import (
	"go.uber.org/zap"

	"hrservice/internal/domain/company"
	"hrservice/internal/domain/notification"
	"hrservice/internal/domain/position"
	"hrservice/internal/domain/project"
	"hrservice/internal/domain/resume"
	"hrservice/internal/domain/stats"
	"hrservice/internal/domain/user"
)

// FailureSource exposes the number of failed event handler runs.
type FailureSource interface {
	Load() int64
}

type Handler struct {
	UserSvc         user.Service
	CompanySvc      company.Service
	ProjectSvc      project.Service
	PositionSvc     position.Service
	ResumeSvc       resume.Service
	NotificationSvc notification.Service
	StatsSvc        stats.Service
	Failures        FailureSource
	UploadDir       string
	Log             *zap.Logger
}

func New(
	userSvc user.Service,
	companySvc company.Service,
	projectSvc project.Service,
	positionSvc position.Service,
	resumeSvc resume.Service,
	notificationSvc notification.Service,
	statsSvc stats.Service,
	failures FailureSource,
	uploadDir string,
	log *zap.Logger,
) *Handler {
	return &Handler{
		UserSvc:         userSvc,
		CompanySvc:      companySvc,
		ProjectSvc:      projectSvc,
		PositionSvc:     positionSvc,
		ResumeSvc:       resumeSvc,
		NotificationSvc: notificationSvc,
		StatsSvc:        statsSvc,
		Failures:        failures,
		UploadDir:       uploadDir,
		Log:             log,
	}
}
