package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// Pagination
	PersonalPageSize       = 10
	AdminComplaintPageSize = 15
	AdminUserPageSize      = 20

	// Attachments
	MaxAttachmentSize = 10 << 20 // 10MB per file

	// Limits
	MaxTitleLen      = 255
	MaxAdminNotesLen = 1000
	MaxAssignedToLen = 255

	// Dashboards
	RecentComplaintsLimit = 10
	DashboardRecentLimit  = 5
	HighPriorityLimit     = 5
	TopCategoriesLimit    = 6
	TrailingStatsMonths   = 12
	StatsCacheTTL         = time.Minute
)

// AllowedAttachmentExts — білий список розширень для завантажень.
var AllowedAttachmentExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Config — зовнішня конфігурація, зчитана з оточення (.env через godotenv).
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	UploadDir string
	BaseURL   string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	TelegramBotToken string
	TelegramChatID   int64
}

// Load читає конфігурацію з оточення, підставляючи дефолти для
// локальної розробки (значення з docker-compose).
func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "user"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "complainthub"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getenv("JWT_SECRET", "dev-only-secret-change-me"),

		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		BaseURL:   getenv("BASE_URL", "http://localhost:8080"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getenv("MAIL_FROM", "noreply@complainthub.local"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getenvInt64("TELEGRAM_CHAT_ID"),
	}
}

// DSN збирає рядок підключення PostgreSQL для GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string) int64 {
	var n int64
	fmt.Sscanf(os.Getenv(key), "%d", &n)
	return n
}
