package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hrservice/internal/app/http/handler"
	"hrservice/internal/app/http/middleware"
)

// maxUploadMemory bounds the in-memory part of a multipart resume upload.
const maxUploadMemory = 8 << 20

type Options struct {
	JWTSecret []byte
	// CORSOrigins lists allowed browser origins; "*" allows any. Empty
	// disables CORS handling.
	CORSOrigins []string
}

func NewRouter(h *handler.Handler, log *zap.Logger, opts Options) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = maxUploadMemory

	r.Use(
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)
	if len(opts.CORSOrigins) > 0 {
		r.Use(corsMiddleware(opts.CORSOrigins))
	}

	r.GET("/health", h.Health)

	api := r.Group("/api/v1", middleware.BearerAuth(opts.JWTSecret))

	users := api.Group("/users")
	users.GET("", h.UserIndex)
	users.GET("/:id", h.UserFind)

	companies := api.Group("/companies")
	companies.GET("", h.CompanyIndex)
	companies.POST("", h.CompanyCreate)
	companies.GET("/:id", h.CompanyFind)
	companies.PATCH("/:id", h.CompanyUpdate)
	companies.DELETE("/:id", h.CompanyDelete)
	companies.PATCH("/:id/manager", h.CompanyAssignManager)

	projects := api.Group("/projects")
	projects.GET("", h.ProjectIndex)
	projects.POST("", h.ProjectCreate)
	projects.GET("/:id", h.ProjectFind)

	positions := api.Group("/positions")
	positions.GET("", h.PositionIndex)
	positions.POST("", h.PositionCreate)
	positions.GET("/:id", h.PositionFind)
	positions.PATCH("/:id", h.PositionUpdate)
	positions.DELETE("/:id", h.PositionDelete)
	positions.PATCH("/:id/manager", h.PositionAssignManager)

	resumes := api.Group("/resumes")
	resumes.GET("", h.ResumeIndex)
	resumes.POST("", h.ResumeCreate)
	resumes.GET("/:id", h.ResumeFind)
	resumes.PATCH("/:id", h.ResumeUpdate)
	resumes.DELETE("/:id", h.ResumeDelete)
	resumes.PATCH("/:id/status", h.ResumeUpdateStatus)
	resumes.POST("/:id/call-history", h.ResumeAddCallHistory)
	resumes.PATCH("/:id/file", h.ResumeUploadFile)
	resumes.GET("/:id/comments", h.ResumeComments)
	resumes.POST("/:id/comments", h.ResumeAddComment)

	notifications := api.Group("/notifications")
	notifications.GET("", h.NotificationIndex)
	notifications.POST("", h.NotificationCreate)
	notifications.PATCH("/:id/sent", h.NotificationMarkSent)

	api.GET("/stats/resumes", h.StatsResumes)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	return cors.New(cfg)
}
