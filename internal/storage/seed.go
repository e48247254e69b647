package storage

import (
	"log"

	"complainthub/backend/internal/models"
	"complainthub/backend/internal/title"
)

// ListTitleBands повертає довідкові смуги титулів, упорядковані за
// нижньою межею.
func (s *Service) ListTitleBands() ([]models.UserTitle, error) {
	var bands []models.UserTitle
	err := s.DB.Order("min_complaints ASC").Find(&bands).Error
	return bands, err
}

// SeedReferenceData наповнює довідкові таблиці (титули й статуси),
// якщо вони ще порожні. Виклик ідемпотентний.
func (s *Service) SeedReferenceData() error {
	for _, band := range title.DefaultBands {
		min := band.MinComplaints
		if min == 0 {
			// Сід-дані зберігають історичну нижню межу Newcomer = 1;
			// ForCount однаково повертає найнижчу смугу для нуля.
			min = 1
		}
		row := models.UserTitle{
			Title:         band.Title,
			MinComplaints: min,
			MaxComplaints: band.MaxComplaints,
			Color:         band.Color,
			Description:   band.Description,
		}
		err := s.DB.Where(models.UserTitle{Title: band.Title}).
			Attrs(row).
			FirstOrCreate(&models.UserTitle{}).Error
		if err != nil {
			return err
		}
	}

	statuses := []models.ComplaintStatus{
		{Name: models.StatusPending, Color: "#f59e0b", Description: "Complaint is waiting to be reviewed"},
		{Name: models.StatusInProgress, Color: "#3b82f6", Description: "Complaint is being actively worked on"},
		{Name: models.StatusResolved, Color: "#10b981", Description: "Complaint has been resolved"},
	}
	for _, status := range statuses {
		err := s.DB.Where(models.ComplaintStatus{Name: status.Name}).
			Attrs(status).
			FirstOrCreate(&models.ComplaintStatus{}).Error
		if err != nil {
			return err
		}
	}

	log.Println("Reference data seeded (user titles, complaint statuses).")
	return nil
}
