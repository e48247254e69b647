package models

import "time"

// UserTitle — довідкова смуга "кількість скарг → титул".
// MaxComplaints == nil означає відкриту верхню межу.
type UserTitle struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"uniqueIndex" json:"title"`
	MinComplaints int    `json:"min_complaints"`
	MaxComplaints *int   `json:"max_complaints"`
	Color         string `gorm:"default:#6b7280" json:"color"`
	Description   string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ComplaintStatus — довідкові метадані статусу (колір, опис) суто для
// відображення; стан скарги зберігається рядком у самій скарзі.
type ComplaintStatus struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Color       string `json:"color"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
