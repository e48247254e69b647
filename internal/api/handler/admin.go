package handler

import (
	"fmt"
	"net/http"
	"time"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type adminDashboardCounts struct {
	TotalComplaints      int64            `json:"total_complaints"`
	PendingComplaints    int64            `json:"pending_complaints"`
	InProgressComplaints int64            `json:"in_progress_complaints"`
	ResolvedComplaints   int64            `json:"resolved_complaints"`
	TotalUsers           int64            `json:"total_users"`
	NewUsersThisMonth    int64            `json:"new_users_this_month"`
	ByStatus             map[string]int64 `json:"complaints_by_status"`
	ByCategory           map[string]int64 `json:"complaints_by_category"`
}

// AdminDashboard — адмінський дашборд: агреговані лічильники (кешуються
// в Redis) плюс свіжі списки останніх та невирішених термінових скарг.
func (h *Handler) AdminDashboard(c *gin.Context) {
	var counts adminDashboardCounts
	hit, err := h.Storage.GetCachedJSON("admin_dashboard_counts", &counts)
	if err != nil {
		respondError(c, err, "")
		return
	}
	if !hit {
		if counts, err = h.loadAdminCounts(); err != nil {
			respondError(c, err, "")
			return
		}
		if err := h.Storage.SetCachedJSON("admin_dashboard_counts", counts, config.StatsCacheTTL); err != nil {
			respondError(c, err, "")
			return
		}
	}

	recent, err := h.Storage.RecentComplaints(config.RecentComplaintsLimit, nil)
	if err != nil {
		respondError(c, err, "")
		return
	}
	highPriority, err := h.Storage.OpenHighPriorityComplaints(config.HighPriorityLimit)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":                   counts,
		"recent_complaints":        recent,
		"high_priority_complaints": highPriority,
	})
}

func (h *Handler) loadAdminCounts() (adminDashboardCounts, error) {
	var counts adminDashboardCounts

	total, err := h.Storage.CountComplaints()
	if err != nil {
		return counts, err
	}
	byStatus, err := h.Storage.CountComplaintsByStatus(nil)
	if err != nil {
		return counts, err
	}
	byCategory, err := h.Storage.CountComplaintsByCategory(nil)
	if err != nil {
		return counts, err
	}
	users, err := h.Storage.CountNonAdminUsers()
	if err != nil {
		return counts, err
	}
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newUsers, err := h.Storage.CountUsersSince(startOfMonth)
	if err != nil {
		return counts, err
	}

	counts.TotalComplaints = total
	counts.PendingComplaints = byStatus[models.StatusPending]
	counts.InProgressComplaints = byStatus[models.StatusInProgress]
	counts.ResolvedComplaints = byStatus[models.StatusResolved]
	counts.TotalUsers = users
	counts.NewUsersThisMonth = newUsers
	counts.ByStatus = byStatus
	counts.ByCategory = byCategory
	return counts, nil
}

// AdminComplaints — повний список скарг з фільтрами й розширеним
// пошуком по ідентичності скаржника.
func (h *Handler) AdminComplaints(c *gin.Context) {
	page, err := h.Complaints.List(h.identity(c), complaint.ListQuery{
		Scope:    complaint.ScopeAll,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     pageQuery(c),
	})
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, page)
}

// AdminShowComplaint — детальна сторінка скарги для адміна.
func (h *Handler) AdminShowComplaint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	v, err := h.Complaints.Get(h.identity(c), id, "")
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complaint":      v,
		"status_color":   StatusColor(v.Status),
		"priority_color": PriorityColor(v.Priority),
	})
}

type statusRequest struct {
	Status     string `json:"status" binding:"required"`
	AssignedTo string `json:"assigned_to"`
}

// AdminUpdateStatus змінює статус скарги (будь-який напрямок) і
// призначення; власник отримує сповіщення.
func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	before, err := h.Complaints.Get(h.identity(c), id, "")
	if err != nil {
		respondError(c, err, "")
		return
	}
	oldStatus := before.Status

	v, err := h.Complaints.UpdateStatus(h.identity(c), id, complaint.StatusCommand{
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondError(c, err, "")
		return
	}

	msg := fmt.Sprintf("Complaint status updated from '%s' to '%s'.", oldStatus, v.Status)
	if v.UserID != nil {
		msg += " Notification sent to user."
	}
	c.JSON(http.StatusOK, gin.H{"complaint": v, "message": msg})
}

type notesRequest struct {
	AdminNotes string `json:"admin_notes" binding:"required"`
}

// AdminAddNotes додає адмінські нотатки до скарги.
func (h *Handler) AdminAddNotes(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	v, err := h.Complaints.AddNotes(h.identity(c), id, complaint.NotesCommand{Notes: req.AdminNotes})
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": v, "message": "Admin notes added successfully."})
}

// AdminUsers — список неадмінських користувачів з пошуком і фільтром
// за титулом.
func (h *Handler) AdminUsers(c *gin.Context) {
	users, total, err := h.Storage.ListUsers(storage.UserFilter{
		Search:  c.Query("search"),
		Title:   c.Query("title"),
		Page:    pageQuery(c),
		PerPage: config.AdminUserPageSize,
	})
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":    users,
		"total":    total,
		"page":     pageQuery(c),
		"per_page": config.AdminUserPageSize,
	})
}

type adminStatistics struct {
	MonthlyComplaints []storage.MonthlyCount  `json:"monthly_complaints"`
	MonthlyUsers      []storage.MonthlyCount  `json:"monthly_users"`
	AvgResolutionDays float64                 `json:"avg_resolution_days"`
	TopCategories     []storage.CategoryCount `json:"top_categories"`
	TitleDistribution map[string]int64        `json:"title_distribution"`
}

// AdminStatistics — сторінка статистики; результат кешується в Redis.
func (h *Handler) AdminStatistics(c *gin.Context) {
	var stats adminStatistics
	hit, err := h.Storage.GetCachedJSON("admin_statistics", &stats)
	if err != nil {
		respondError(c, err, "")
		return
	}
	if hit {
		c.JSON(http.StatusOK, stats)
		return
	}

	if stats.MonthlyComplaints, err = h.Storage.MonthlyComplaintCounts(config.TrailingStatsMonths); err != nil {
		respondError(c, err, "")
		return
	}
	if stats.MonthlyUsers, err = h.Storage.MonthlyUserCounts(config.TrailingStatsMonths); err != nil {
		respondError(c, err, "")
		return
	}
	if stats.AvgResolutionDays, err = h.Storage.AverageResolutionDays(); err != nil {
		respondError(c, err, "")
		return
	}
	if stats.TopCategories, err = h.Storage.TopCategories(config.TopCategoriesLimit); err != nil {
		respondError(c, err, "")
		return
	}
	if stats.TitleDistribution, err = h.Storage.TitleDistribution(); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.Storage.SetCachedJSON("admin_statistics", stats, config.StatsCacheTTL); err != nil {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, stats)
}
