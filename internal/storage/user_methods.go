package storage

import (
	"errors"
	"log"
	"time"

	"complainthub/backend/internal/models"

	"gorm.io/gorm"
)

// CreateUser створює користувача в PostgreSQL.
func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

// GetUserByID повертає користувача або nil, якщо запис не знайдено.
func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail повертає користувача за поштою або nil.
func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserTitle записує новий титул, обчислений title-рушієм.
func (s *Service) UpdateUserTitle(userID uint, title string) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("title", title).Error
}

// ListAdmins повертає всі адмінські акаунти (отримувачі алертів про
// скарги з високим пріоритетом).
func (s *Service) ListAdmins() ([]models.User, error) {
	var admins []models.User
	if err := s.DB.Where("is_admin = ?", true).Find(&admins).Error; err != nil {
		log.Printf("ERROR: Failed to list admin users: %v", err)
		return nil, err
	}
	return admins, nil
}

// ListUsers — адмінський список неадмінських користувачів з кількістю
// скарг (підзапит), пошуком та фільтром за титулом.
func (s *Service) ListUsers(f UserFilter) ([]models.User, int64, error) {
	q := s.DB.Model(&models.User{}).Where("is_admin = ?", false)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if f.Title != "" {
		q = q.Where("title = ?", f.Title)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := q.
		Select("users.*, (SELECT COUNT(*) FROM complaints WHERE complaints.user_id = users.id) AS complaint_count").
		Order("created_at DESC, id DESC").
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Find(&users).Error
	if err != nil {
		log.Printf("ERROR: Failed to list users: %v", err)
		return nil, 0, err
	}
	return users, total, nil
}

// CountComplaintsForUser рахує поточну кількість скарг користувача.
// Title-рушій викликає це після кожного створення чи видалення.
func (s *Service) CountComplaintsForUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Complaint{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountNonAdminUsers рахує зареєстрованих користувачів без адмінів.
func (s *Service) CountNonAdminUsers() (int64, error) {
	var count int64
	err := s.DB.Model(&models.User{}).Where("is_admin = ?", false).Count(&count).Error
	return count, err
}

// CountUsersSince рахує нових неадмінських користувачів від часу t.
func (s *Service) CountUsersSince(t time.Time) (int64, error) {
	var count int64
	err := s.DB.Model(&models.User{}).
		Where("is_admin = ?", false).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}
