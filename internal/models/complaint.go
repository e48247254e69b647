package models

import "time"

// Статуси скарги. Нові скарги завжди створюються зі статусом Pending.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// Пріоритети скарги.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

var (
	Statuses   = []string{StatusPending, StatusInProgress, StatusResolved}
	Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
	Categories = []string{"Service", "Product", "Delivery", "Billing", "Support", "Other"}
)

// Complaint — одна скарга. Інваріант: рівно одне з двох — або UserID
// вказує на зареєстрованого користувача, або заповнені GuestName та
// GuestEmail. GuestToken видається лише гостьовим скаргам і дає доступ
// до публічної сторінки перегляду.
type Complaint struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `json:"category"`
	Priority    string `gorm:"default:Medium" json:"priority"`
	Status      string `gorm:"default:Pending" json:"status"`

	UserID     *uint  `json:"user_id"`
	User       *User  `json:"user,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	GuestToken string `json:"-"`

	AdminNotes string `gorm:"type:text" json:"admin_notes,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments"`
}

// IsGuest повертає true для скарг без зареєстрованого власника.
func (c *Complaint) IsGuest() bool {
	return c.UserID == nil
}

// SubmitterName — ім'я для листів та адмінських списків.
func (c *Complaint) SubmitterName() string {
	if c.User != nil {
		return c.User.Name
	}
	return c.GuestName
}

// ValidStatus перевіряє значення статусу.
func ValidStatus(s string) bool { return contains(Statuses, s) }

// ValidPriority перевіряє значення пріоритету.
func ValidPriority(s string) bool { return contains(Priorities, s) }

// ValidCategory перевіряє значення категорії.
func ValidCategory(s string) bool { return contains(Categories, s) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
