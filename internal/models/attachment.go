package models

import "time"

// Attachment — файл, прикріплений до скарги. FilePath — відносний шлях
// у blob-сховищі; сам файл видаляється разом із записом.
type Attachment struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ComplaintID  uint   `gorm:"index" json:"complaint_id"`
	OriginalName string `json:"original_name"`
	FilePath     string `json:"file_path"`
	FileType     string `json:"file_type"`
	FileSize     int64  `json:"file_size"`

	CreatedAt time.Time `json:"created_at"`
}
