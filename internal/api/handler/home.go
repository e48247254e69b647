package handler

import (
	"net/http"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type homeStats struct {
	TotalComplaints    int64 `json:"total_complaints"`
	ResolvedComplaints int64 `json:"resolved_complaints"`
	PendingComplaints  int64 `json:"pending_complaints"`
	TotalUsers         int64 `json:"total_users"`
}

// Home — публічна головна сторінка з агрегованими лічильниками.
// Лічильники кешуються в Redis, щоб не бити в БД на кожен перегляд.
func (h *Handler) Home(c *gin.Context) {
	var stats homeStats
	hit, err := h.Storage.GetCachedJSON("home_stats", &stats)
	if err != nil {
		respondError(c, err, "")
		return
	}

	if !hit {
		total, err := h.Storage.CountComplaints()
		if err != nil {
			respondError(c, err, "")
			return
		}
		byStatus, err := h.Storage.CountComplaintsByStatus(nil)
		if err != nil {
			respondError(c, err, "")
			return
		}
		users, err := h.Storage.CountNonAdminUsers()
		if err != nil {
			respondError(c, err, "")
			return
		}

		stats = homeStats{
			TotalComplaints:    total,
			ResolvedComplaints: byStatus[models.StatusResolved],
			PendingComplaints:  byStatus[models.StatusPending],
			TotalUsers:         users,
		}
		if err := h.Storage.SetCachedJSON("home_stats", stats, config.StatsCacheTTL); err != nil {
			respondError(c, err, "")
			return
		}
	}

	c.JSON(http.StatusOK, stats)
}
