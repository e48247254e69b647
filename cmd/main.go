package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"complainthub/backend/internal/api/handler"
	"complainthub/backend/internal/blob"
	"complainthub/backend/internal/complaint"
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/notify"
	"complainthub/backend/internal/storage"
	"complainthub/backend/internal/title"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis (кеш агрегатів)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Міграції
	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Attachment{},
		&models.UserTitle{},
		&models.ComplaintStatus{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting ComplaintHub Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)
	if err := s.SeedReferenceData(); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	blobs, err := blob.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to init blob store: %v", err)
	}

	// 2. Диспетчер сповіщень (опційний Telegram-канал для staff-алертів)
	var alerter notify.Alerter
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramAlerter(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("ERROR: Failed to start Telegram alerter, continuing without it: %v", err)
		} else {
			alerter = tg
		}
	}
	mailer := &notify.SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}
	dispatcher := notify.NewDispatcher(mailer, alerter, cfg.BaseURL)
	go dispatcher.Run() // fire-and-forget доставка

	// 3. Lifecycle-сервіс: смуги титулів читаються з довідкової таблиці
	bandRows, err := s.ListTitleBands()
	if err != nil {
		log.Fatalf("Failed to load title bands: %v", err)
	}
	svc := complaint.NewService(s, blobs, dispatcher, title.FromModels(bandRows))

	// 4. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(svc, s, cfg)
	r.Use(h.LoadIdentity())

	// Публічні роути
	r.GET("/", h.Home)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/complaints/create", h.ComplaintForm)
	r.POST("/complaints", h.SubmitComplaint)
	r.GET("/complaints/:id", h.ShowComplaint)
	r.Static("/uploads", cfg.UploadDir)

	// Роути автентифікованих користувачів
	authed := r.Group("/", h.AuthRequired())
	authed.GET("/dashboard", h.Dashboard)
	authed.GET("/complaints", h.ListComplaints)
	authed.GET("/complaints/:id/edit", h.EditComplaint)
	authed.PUT("/complaints/:id", h.UpdateComplaint)
	authed.DELETE("/complaints/:id", h.DeleteComplaint)

	// Адмінські роути
	admin := r.Group("/admin", h.AdminRequired())
	admin.GET("/dashboard", h.AdminDashboard)
	admin.GET("/complaints", h.AdminComplaints)
	admin.GET("/complaints/:id", h.AdminShowComplaint)
	admin.PUT("/complaints/:id/status", h.AdminUpdateStatus)
	admin.POST("/complaints/:id/notes", h.AdminAddNotes)
	admin.GET("/users", h.AdminUsers)
	admin.GET("/statistics", h.AdminStatistics)

	// Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
