package storage

import (
	"errors"
	"log"

	"complainthub/backend/internal/models"

	"gorm.io/gorm"
)

// CreateComplaint створює скаргу в PostgreSQL.
func (s *Service) CreateComplaint(c *models.Complaint) error {
	if c.Status == "" {
		c.Status = models.StatusPending
	}

	if err := s.DB.Create(c).Error; err != nil {
		log.Printf("ERROR: Failed to create complaint %q: %v", c.Title, err)
		return err
	}
	return nil
}

// GetComplaintByID повертає скаргу з вкладеннями та власником,
// або nil, якщо запис не знайдено.
func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var c models.Complaint
	err := s.DB.Preload("Attachments").Preload("User").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveComplaint зберігає змінену скаргу.
func (s *Service) SaveComplaint(c *models.Complaint) error {
	return s.DB.Save(c).Error
}

// DeleteComplaint видаляє скаргу разом із записами вкладень.
// Самі blob-файли видаляє lifecycle-менеджер до виклику.
func (s *Service) DeleteComplaint(c *models.Complaint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("complaint_id = ?", c.ID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(c).Error
	})
}

// ListComplaints — сторінка скарг за фільтром, найновіші першими.
func (s *Service) ListComplaints(f ComplaintFilter) ([]models.Complaint, int64, error) {
	q := s.DB.Model(&models.Complaint{})

	if f.UserID != nil {
		q = q.Where("complaints.user_id = ?", *f.UserID)
	}
	if f.Status != "" {
		q = q.Where("complaints.status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("complaints.priority = ?", f.Priority)
	}
	if f.Category != "" {
		q = q.Where("complaints.category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		if f.SearchSubmitter {
			q = q.Joins("LEFT JOIN users ON users.id = complaints.user_id").
				Where(`complaints.title ILIKE ? OR complaints.description ILIKE ?
					OR users.name ILIKE ? OR users.email ILIKE ?
					OR complaints.guest_name ILIKE ? OR complaints.guest_email ILIKE ?`,
					like, like, like, like, like, like)
		} else {
			q = q.Where("complaints.title ILIKE ? OR complaints.description ILIKE ?", like, like)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []models.Complaint
	err := q.Preload("Attachments").Preload("User").
		Order("complaints.created_at DESC, complaints.id DESC").
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, 0, err
	}
	return complaints, total, nil
}

// RecentComplaints — останні скарги для дашбордів; userID звужує
// вибірку до одного власника.
func (s *Service) RecentComplaints(limit int, userID *uint) ([]models.Complaint, error) {
	q := s.DB.Preload("Attachments").Preload("User")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var complaints []models.Complaint
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&complaints).Error
	return complaints, err
}

// OpenHighPriorityComplaints — невирішені скарги з високим пріоритетом
// для адмінського дашборду.
func (s *Service) OpenHighPriorityComplaints(limit int) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Preload("Attachments").Preload("User").
		Where("priority = ?", models.PriorityHigh).
		Where("status <> ?", models.StatusResolved).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&complaints).Error
	return complaints, err
}

// CreateAttachment створює запис вкладення. Blob уже має бути
// записаний: сирітський файл допустимий, висячий запис — ні.
func (s *Service) CreateAttachment(a *models.Attachment) error {
	return s.DB.Create(a).Error
}

// DeleteAttachment видаляє запис вкладення.
func (s *Service) DeleteAttachment(a *models.Attachment) error {
	return s.DB.Delete(a).Error
}
