package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"complainthub/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ComplaintFilter описує вибірку списку скарг. Порожні поля фільтрів
// ігноруються; Search — підрядок без урахування регістру по заголовку й
// опису, а з SearchSubmitter — ще й по імені/пошті власника чи гостя.
type ComplaintFilter struct {
	UserID          *uint
	Status          string
	Priority        string
	Category        string
	Search          string
	SearchSubmitter bool
	Page            int
	PerPage         int
}

// UserFilter описує адмінську вибірку користувачів (без адмінів).
type UserFilter struct {
	Search  string
	Title   string
	Page    int
	PerPage int
}

// MonthlyCount — кількість записів за один календарний місяць.
type MonthlyCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// CategoryCount — кількість скарг у категорії.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Storage interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUserTitle(userID uint, title string) error
	ListAdmins() ([]models.User, error)
	ListUsers(f UserFilter) ([]models.User, int64, error)
	CountComplaintsForUser(userID uint) (int64, error)

	CreateComplaint(c *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	SaveComplaint(c *models.Complaint) error
	DeleteComplaint(c *models.Complaint) error
	ListComplaints(f ComplaintFilter) ([]models.Complaint, int64, error)
	RecentComplaints(limit int, userID *uint) ([]models.Complaint, error)
	OpenHighPriorityComplaints(limit int) ([]models.Complaint, error)

	CreateAttachment(a *models.Attachment) error
	DeleteAttachment(a *models.Attachment) error

	ListTitleBands() ([]models.UserTitle, error)

	CountComplaints() (int64, error)
	CountComplaintsByStatus(userID *uint) (map[string]int64, error)
	CountComplaintsByCategory(userID *uint) (map[string]int64, error)
	CountComplaintsByPriority(userID *uint) (map[string]int64, error)
	CountNonAdminUsers() (int64, error)
	CountUsersSince(t time.Time) (int64, error)
	MonthlyComplaintCounts(months int) ([]MonthlyCount, error)
	MonthlyUserCounts(months int) ([]MonthlyCount, error)
	AverageResolutionDays() (float64, error)
	TopCategories(limit int) ([]CategoryCount, error)
	TitleDistribution() (map[string]int64, error)

	GetCachedJSON(key string, dest any) (bool, error)
	SetCachedJSON(key string, value any, ttl time.Duration) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// GetCachedJSON читає закешоване значення з Redis. Промах кешу
// (redis.Nil або відсутній клієнт) — не помилка.
func (s *Service) GetCachedJSON(key string, dest any) (bool, error) {
	if s.Redis == nil {
		return false, nil
	}
	raw, err := s.Redis.Get(s.Ctx, "cache:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetCachedJSON зберігає значення в Redis з TTL.
func (s *Service) SetCachedJSON(key string, value any, ttl time.Duration) error {
	if s.Redis == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Redis.Set(s.Ctx, "cache:"+key, string(raw), ttl).Err()
}
