package models

import "time"

// User представляє зареєстрованого користувача системи.
// Title — похідна мітка репутації; її змінює лише title-рушій,
// ніколи напряму обробники запитів.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	Title        string `gorm:"default:Newcomer" json:"title"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Complaints []Complaint `json:"-"`

	// Заповнюється лише адмінським списком користувачів (підзапит).
	ComplaintCount int64 `gorm:"->;-:migration" json:"complaint_count"`
}
