package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ComplaintForm повертає метадані форми подання скарги.
func (h *Handler) ComplaintForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":    models.Categories,
		"priorities":    models.Priorities,
		"max_file_size": config.MaxAttachmentSize,
		"allowed_types": []string{"jpg", "jpeg", "png", "pdf", "doc", "docx"},
	})
}

// SubmitComplaint приймає нову скаргу (multipart) від гостя або
// автентифікованого користувача.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	cmd := complaint.CreateCommand{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Priority:    c.PostForm("priority"),
		GuestName:   c.PostForm("guest_name"),
		GuestEmail:  c.PostForm("guest_email"),
	}

	uploads, cleanup, err := formUploads(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	defer cleanup()
	cmd.Uploads = uploads

	created, err := h.Complaints.Create(h.identity(c), cmd)
	if err != nil {
		respondError(c, err, "")
		return
	}

	resp := gin.H{"complaint": created}
	if created.IsGuest() {
		resp["guest_token"] = created.GuestToken
		resp["message"] = "Complaint submitted successfully! We have sent a confirmation to your email."
	} else {
		resp["message"] = "Complaint submitted successfully! You can track its progress in your dashboard."
	}
	c.JSON(http.StatusCreated, resp)
}

// ShowComplaint — публічна сторінка скарги. Гостьові скарги вимагають
// access-токена з листа-підтвердження.
func (h *Handler) ShowComplaint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	v, err := h.Complaints.Get(h.identity(c), id, c.Query("token"))
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

// ListComplaints — особистий список скарг із фільтрами.
func (h *Handler) ListComplaints(c *gin.Context) {
	page, err := h.Complaints.List(h.identity(c), complaint.ListQuery{
		Scope:    complaint.ScopeMine,
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

// EditComplaint повертає скаргу для форми редагування, з тими самими
// обмеженнями, що й оновлення.
func (h *Handler) EditComplaint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	v, err := h.Complaints.ForEdit(h.identity(c), id)
	if err != nil {
		respondError(c, err, "Resolved complaints cannot be edited.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"complaint":  v,
		"categories": models.Categories,
		"priorities": models.Priorities,
	})
}

// UpdateComplaint застосовує редагування власника (multipart: поля,
// нові файли, remove_attachments зі списком id).
func (h *Handler) UpdateComplaint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	cmd := complaint.UpdateCommand{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Priority:    c.PostForm("priority"),
	}
	for _, raw := range c.PostFormArray("remove_attachments") {
		attID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"remove_attachments": "invalid attachment id"}})
			return
		}
		cmd.RemoveAttachments = append(cmd.RemoveAttachments, uint(attID))
	}

	uploads, cleanup, err := formUploads(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	defer cleanup()
	cmd.Uploads = uploads

	v, err := h.Complaints.Update(h.identity(c), id, cmd)
	if err != nil {
		respondError(c, err, "Resolved complaints cannot be edited.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaint": v, "message": "Complaint updated successfully!"})
}

// DeleteComplaint видаляє скаргу власника, поки вона Pending.
func (h *Handler) DeleteComplaint(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Complaints.Delete(h.identity(c), id); err != nil {
		respondError(c, err, "Only pending complaints can be deleted.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully!"})
}

// Dashboard — особистий кабінет: лічильники, розбивки, останні скарги.
func (h *Handler) Dashboard(c *gin.Context) {
	user := currentUser(c)

	total, err := h.Storage.CountComplaintsForUser(user.ID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	byStatus, err := h.Storage.CountComplaintsByStatus(&user.ID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	byCategory, err := h.Storage.CountComplaintsByCategory(&user.ID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	byPriority, err := h.Storage.CountComplaintsByPriority(&user.ID)
	if err != nil {
		respondError(c, err, "")
		return
	}
	recent, err := h.Storage.RecentComplaints(config.DashboardRecentLimit, &user.ID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                user,
		"title_color":         TitleColor(user.Title),
		"total_complaints":    total,
		"pending_complaints":  byStatus[models.StatusPending],
		"in_progress":         byStatus[models.StatusInProgress],
		"resolved_complaints": byStatus[models.StatusResolved],
		"by_category":         byCategory,
		"by_priority":         byPriority,
		"recent_complaints":   recent,
	})
}

// formUploads відкриває файли multipart-форми як domain-аплоади.
// Запит без multipart-тіла — просто нуль файлів.
func formUploads(c *gin.Context) ([]complaint.Upload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, nil
	}

	var uploads []complaint.Upload
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range form.File["attachments"] {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		uploads = append(uploads, complaint.Upload{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return uploads, cleanup, nil
}
