package main

import (
	"fmt"
	"log"
	"os"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"
	"complainthub/backend/internal/title"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: create-admin <name> <email> <password> | promote <email> | seed | retitle")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create-admin":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin create-admin <name> <email> <password>")
			os.Exit(1)
		}
		if err := createAdmin(storageSvc, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin account %s created.\n", os.Args[3])
	case "promote":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin promote <email>")
			os.Exit(1)
		}
		if err := promote(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s is now an admin.\n", os.Args[2])
	case "seed":
		if err := storageSvc.SeedReferenceData(); err != nil {
			log.Fatalf("Error seeding reference data: %v", err)
		}
		fmt.Println("Reference data seeded.")
	case "retitle":
		n, err := retitleAll(storageSvc)
		if err != nil {
			log.Fatalf("Error recomputing titles: %v", err)
		}
		fmt.Printf("Recomputed titles for %d users.\n", n)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createAdmin(s *storage.Service, name, email, password string) error {
	existing, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.CreateUser(&models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		Title:        "Newcomer",
	})
}

func promote(s *storage.Service, email string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s not found", email)
	}
	user.IsAdmin = true
	return s.DB.Save(user).Error
}

// retitleAll перераховує титул кожного користувача з живої кількості
// скарг — корисно після ручних правок у БД чи зміни смуг.
func retitleAll(s *storage.Service) (int, error) {
	bandRows, err := s.ListTitleBands()
	if err != nil {
		return 0, err
	}
	bands := title.FromModels(bandRows)
	if len(bands) == 0 {
		bands = title.DefaultBands
	}

	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return 0, err
	}

	for i := range users {
		count, err := s.CountComplaintsForUser(users[i].ID)
		if err != nil {
			return i, err
		}
		label := bands.ForCount(int(count))
		if label == users[i].Title {
			continue
		}
		if err := s.UpdateUserTitle(users[i].ID, label); err != nil {
			return i, err
		}
	}
	return len(users), nil
}
