package complaint

import (
	"fmt"
	"io"
	"net/mail"
	"path/filepath"
	"strings"

	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
)

// Identity is the request-scoped caller identity, passed explicitly into
// every lifecycle call. UserID is nil for guests.
type Identity struct {
	UserID  *uint
	IsAdmin bool
}

// Guest is the anonymous identity.
var Guest = Identity{}

// Authenticated reports whether the caller is a registered user.
func (id Identity) Authenticated() bool { return id.UserID != nil }

// Owns reports whether the caller is the complaint's owning user.
func (id Identity) Owns(c *models.Complaint) bool {
	return id.UserID != nil && c.UserID != nil && *id.UserID == *c.UserID
}

// Upload is one attachment file submitted with a create or update.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// CreateCommand describes a complaint submission (guest or authenticated).
type CreateCommand struct {
	Title       string
	Description string
	Category    string
	Priority    string
	GuestName   string
	GuestEmail  string
	Uploads     []Upload
}

// UpdateCommand describes an owner edit: field changes plus attachment
// additions and removals.
type UpdateCommand struct {
	Title             string
	Description       string
	Category          string
	Priority          string
	RemoveAttachments []uint
	Uploads           []Upload
}

// StatusCommand is a staff status change with optional assignment.
type StatusCommand struct {
	Status     string
	AssignedTo string
}

// NotesCommand replaces the admin notes on a complaint.
type NotesCommand struct {
	Notes string
}

// ListQuery selects a page of complaints.
type ListQuery struct {
	Scope    string // "mine" or "all"
	Status   string
	Priority string
	Category string
	Search   string
	Page     int
}

const (
	ScopeMine = "mine"
	ScopeAll  = "all"
)

func validateFields(v *validation, title, description, category, priority string) {
	if strings.TrimSpace(title) == "" {
		v.add("title", "title is required")
	} else if len(title) > config.MaxTitleLen {
		v.add("title", fmt.Sprintf("title must be at most %d characters", config.MaxTitleLen))
	}
	if strings.TrimSpace(description) == "" {
		v.add("description", "description is required")
	}
	if !models.ValidCategory(category) {
		v.add("category", "invalid category")
	}
	if !models.ValidPriority(priority) {
		v.add("priority", "invalid priority")
	}
}

func validateUploads(v *validation, uploads []Upload) {
	for i, u := range uploads {
		field := fmt.Sprintf("attachments.%d", i)
		ext := strings.ToLower(filepath.Ext(u.Name))
		if !config.AllowedAttachmentExts[ext] {
			v.add(field, "file type not allowed (jpg, jpeg, png, pdf, doc, docx)")
			continue
		}
		if u.Size > config.MaxAttachmentSize {
			v.add(field, "file exceeds the 10MB limit")
		}
	}
}

func validEmail(s string) bool {
	_, err := mail.ParseAddress(s)
	return err == nil
}
