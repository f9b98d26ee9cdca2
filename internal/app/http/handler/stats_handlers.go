package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hrservice/internal/app/dto"
	"hrservice/internal/domain/stats"
)

func (h *Handler) StatsResumes(c *gin.Context) {
	scope := strings.ToLower(c.DefaultQuery("scope", "all"))

	var positionID *string
	if raw := c.Query("position_id"); raw != "" {
		if !validID(raw) {
			h.badRequest(c, "position_id is not valid")
			return
		}
		positionID = &raw
	}

	withStatuses, withPositions := false, false
	switch scope {
	case "all", "":
		withStatuses, withPositions = true, true
	case "statuses":
		withStatuses = true
	case "positions":
		withPositions = true
	default:
		h.badRequest(c, "invalid scope, must be one of: all, statuses, positions")
		return
	}

	resp := dto.StatsResponse{}
	ctx := c.Request.Context()

	if withStatuses {
		statusStats, err := h.StatsSvc.GetStatusStats(ctx, positionID)
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp.PerStatus = make([]dto.StatusStat, 0, len(statusStats))
		for _, s := range statusStats {
			resp.PerStatus = append(resp.PerStatus, toStatusStatDTO(s))
		}
	}

	if withPositions {
		positionStats, err := h.StatsSvc.GetPositionStats(ctx)
		if err != nil {
			h.writeError(c, err)
			return
		}
		resp.PerPosition = make([]dto.PositionStat, 0, len(positionStats))
		for _, s := range positionStats {
			resp.PerPosition = append(resp.PerPosition, dto.PositionStat{
				PositionID:   s.PositionID,
				ResumeCount:  s.ResumeCount,
				CommentTotal: s.CommentTotal,
			})
		}
	}

	c.JSON(http.StatusOK, resp)
}

func toStatusStatDTO(s stats.StatusStat) dto.StatusStat {
	out := dto.StatusStat{Status: s.Status, ResumeCount: s.ResumeCount}
	if s.AvgProcessingDuration != nil {
		ms := s.AvgProcessingDuration.Milliseconds()
		out.AvgProcessingDurationMS = &ms
	}
	return out
}
