package storage

import (
	"log"

	"complainthub/backend/internal/models"
)

// CountComplaints рахує всі скарги.
func (s *Service) CountComplaints() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

func (s *Service) countComplaintsGrouped(column string, userID *uint) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}

	q := s.DB.Model(&models.Complaint{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var rows []row
	if err := q.Scan(&rows).Error; err != nil {
		log.Printf("ERROR: Failed to group complaints by %s: %v", column, err)
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}

// CountComplaintsByStatus — кількість скарг за статусами; userID
// звужує до одного власника.
func (s *Service) CountComplaintsByStatus(userID *uint) (map[string]int64, error) {
	return s.countComplaintsGrouped("status", userID)
}

// CountComplaintsByCategory — кількість скарг за категоріями.
func (s *Service) CountComplaintsByCategory(userID *uint) (map[string]int64, error) {
	return s.countComplaintsGrouped("category", userID)
}

// CountComplaintsByPriority — кількість скарг за пріоритетами.
func (s *Service) CountComplaintsByPriority(userID *uint) (map[string]int64, error) {
	return s.countComplaintsGrouped("priority", userID)
}

func (s *Service) monthlyCounts(table string, adminFilter bool, months int) ([]MonthlyCount, error) {
	// EXTRACT повертає numeric, тому кастимо до int одразу в запиті.
	rawSQL := `
		SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		       EXTRACT(MONTH FROM created_at)::int AS month,
		       COUNT(*) AS count
		FROM ` + table + `
		` + filterClause(adminFilter) + `
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT ?
	`

	var counts []MonthlyCount
	if err := s.DB.Raw(rawSQL, months).Scan(&counts).Error; err != nil {
		log.Printf("ERROR: Failed to load monthly counts from %s: %v", table, err)
		return nil, err
	}
	return counts, nil
}

func filterClause(adminFilter bool) string {
	if adminFilter {
		return "WHERE is_admin = false"
	}
	return ""
}

// MonthlyComplaintCounts — щомісячні кількості скарг, найновіші місяці
// першими.
func (s *Service) MonthlyComplaintCounts(months int) ([]MonthlyCount, error) {
	return s.monthlyCounts("complaints", false, months)
}

// MonthlyUserCounts — щомісячні реєстрації неадмінських користувачів.
func (s *Service) MonthlyUserCounts(months int) ([]MonthlyCount, error) {
	return s.monthlyCounts("users", true, months)
}

// AverageResolutionDays — середній час від створення до останнього
// оновлення для вирішених скарг, у днях. Історії статусів немає, тому
// updated_at — найкраще доступне наближення моменту вирішення.
func (s *Service) AverageResolutionDays() (float64, error) {
	rawSQL := `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) / 86400), 0)
		FROM complaints
		WHERE status = ?
	`

	var days float64
	if err := s.DB.Raw(rawSQL, models.StatusResolved).Scan(&days).Error; err != nil {
		return 0, err
	}
	return days, nil
}

// TopCategories — категорії з найбільшою кількістю скарг.
func (s *Service) TopCategories(limit int) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := s.DB.Model(&models.Complaint{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	return counts, err
}

// TitleDistribution — розподіл титулів серед неадмінських користувачів.
func (s *Service) TitleDistribution() (map[string]int64, error) {
	type row struct {
		Title string
		Count int64
	}

	var rows []row
	err := s.DB.Model(&models.User{}).
		Select("title, COUNT(*) AS count").
		Where("is_admin = ?", false).
		Group("title").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(rows))
	for _, r := range rows {
		dist[r.Title] = r.Count
	}
	return dist, nil
}
