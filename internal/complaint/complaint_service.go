// Package complaint implements the complaint lifecycle: submission by
// guests or registered users, owner edits, staff triage, attachment
// handling and the title recomputation that follows every change to a
// user's complaint count.
package complaint

import (
	"log"

	"complainthub/backend/internal/blob"
	"complainthub/backend/internal/config"
	"complainthub/backend/internal/models"
	"complainthub/backend/internal/storage"
	"complainthub/backend/internal/title"

	"github.com/google/uuid"
)

// Notifier receives lifecycle events. Delivery is fire-and-forget: the
// lifecycle manager never learns whether a notification went out.
type Notifier interface {
	StatusChanged(c *models.Complaint, oldStatus, newStatus string)
	HighPriorityAlert(c *models.Complaint, admins []models.User)
	SubmissionReceipt(c *models.Complaint)
}

// Service handles the business logic for complaints.
type Service struct {
	Storage  storage.Storage
	Blobs    blob.Store
	Notifier Notifier
	Bands    title.Bands
}

// NewService creates a new complaint service. Pass nil bands to use the
// built-in defaults.
func NewService(s storage.Storage, b blob.Store, n Notifier, bands title.Bands) *Service {
	return &Service{Storage: s, Blobs: b, Notifier: n, Bands: bands}
}

// Page is one page of a complaint listing, newest first.
type Page struct {
	Items      []models.Complaint `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
	TotalPages int                `json:"total_pages"`
}

// Create validates and stores a new complaint. Guests must supply a name
// and email; registered users become the owner and get their title
// recomputed. High-priority submissions alert every admin account.
func (s *Service) Create(id Identity, cmd CreateCommand) (*models.Complaint, error) {
	if cmd.Priority == "" {
		cmd.Priority = models.PriorityMedium
	}

	v := &validation{}
	validateFields(v, cmd.Title, cmd.Description, cmd.Category, cmd.Priority)
	if !id.Authenticated() {
		if cmd.GuestName == "" {
			v.add("guest_name", "guest name is required")
		}
		if cmd.GuestEmail == "" {
			v.add("guest_email", "guest email is required")
		} else if !validEmail(cmd.GuestEmail) {
			v.add("guest_email", "guest email is not a valid address")
		}
	}
	validateUploads(v, cmd.Uploads)
	if err := v.err(); err != nil {
		return nil, err
	}

	c := &models.Complaint{
		Title:       cmd.Title,
		Description: cmd.Description,
		Category:    cmd.Category,
		Priority:    cmd.Priority,
		Status:      models.StatusPending,
	}
	if id.Authenticated() {
		c.UserID = id.UserID
	} else {
		c.GuestName = cmd.GuestName
		c.GuestEmail = cmd.GuestEmail
		c.GuestToken = uuid.New().String()
	}

	if err := s.Storage.CreateComplaint(c); err != nil {
		return nil, err
	}
	if err := s.storeUploads(c, cmd.Uploads); err != nil {
		return nil, err
	}

	if id.Authenticated() {
		if err := s.refreshTitle(*id.UserID); err != nil {
			return nil, err
		}
	}

	if c.Priority == models.PriorityHigh {
		admins, err := s.Storage.ListAdmins()
		if err != nil {
			log.Printf("ERROR: Failed to load admins for high-priority alert on complaint %d: %v", c.ID, err)
		} else {
			s.Notifier.HighPriorityAlert(c, admins)
		}
	}
	if c.IsGuest() {
		s.Notifier.SubmissionReceipt(c)
	}

	return c, nil
}

// Get returns a complaint for viewing. Owners and staff may always view;
// a guest complaint requires its access token.
func (s *Service) Get(id Identity, complaintID uint, guestToken string) (*models.Complaint, error) {
	c, err := s.fetch(complaintID)
	if err != nil {
		return nil, err
	}
	if id.IsAdmin || id.Owns(c) {
		return c, nil
	}
	if c.IsGuest() && guestToken != "" && guestToken == c.GuestToken {
		return c, nil
	}
	return nil, ErrPermission
}

// ForEdit returns the complaint if the caller may edit it: only the
// owner, and only while the complaint is not resolved.
func (s *Service) ForEdit(id Identity, complaintID uint) (*models.Complaint, error) {
	c, err := s.fetch(complaintID)
	if err != nil {
		return nil, err
	}
	if !id.Owns(c) {
		return nil, ErrPermission
	}
	if c.Status == models.StatusResolved {
		return nil, ErrState
	}
	return c, nil
}

// Update applies an owner edit: field changes, attachment removals and
// new uploads. Gated exactly like ForEdit.
func (s *Service) Update(id Identity, complaintID uint, cmd UpdateCommand) (*models.Complaint, error) {
	c, err := s.ForEdit(id, complaintID)
	if err != nil {
		return nil, err
	}

	v := &validation{}
	validateFields(v, cmd.Title, cmd.Description, cmd.Category, cmd.Priority)
	validateUploads(v, cmd.Uploads)
	if err := v.err(); err != nil {
		return nil, err
	}

	// Removals are resolved against the complaint's own attachments
	// before anything mutates, so a cross-tenant id rejects the request
	// without a partial save.
	toRemove := make([]models.Attachment, 0, len(cmd.RemoveAttachments))
	for _, attID := range cmd.RemoveAttachments {
		att := findAttachment(c, attID)
		if att == nil {
			return nil, ErrNotFound
		}
		toRemove = append(toRemove, *att)
	}

	c.Title = cmd.Title
	c.Description = cmd.Description
	c.Category = cmd.Category
	c.Priority = cmd.Priority
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	for _, att := range toRemove {
		if err := s.removeAttachment(&att); err != nil {
			return nil, err
		}
	}
	if err := s.storeUploads(c, cmd.Uploads); err != nil {
		return nil, err
	}

	return s.fetch(c.ID)
}

// Delete removes a complaint. Only the owner may delete, and only while
// the complaint is still pending. Blobs go away with the records and the
// owner's title is recomputed from the decremented count.
func (s *Service) Delete(id Identity, complaintID uint) error {
	c, err := s.fetch(complaintID)
	if err != nil {
		return err
	}
	if !id.Owns(c) {
		return ErrPermission
	}
	if c.Status != models.StatusPending {
		return ErrState
	}

	if err := s.Storage.DeleteComplaint(c); err != nil {
		return err
	}
	// Records first, blobs second: a failed blob removal leaves an
	// orphaned file, never a record pointing at a missing blob.
	for _, att := range c.Attachments {
		if err := s.Blobs.Remove(att.FilePath); err != nil {
			log.Printf("ERROR: Failed to remove blob %s for deleted complaint %d: %v", att.FilePath, c.ID, err)
		}
	}

	return s.refreshTitle(*c.UserID)
}

// UpdateStatus is the staff triage operation: any status may move to any
// other. The owning user, if any, is notified of the change.
func (s *Service) UpdateStatus(id Identity, complaintID uint, cmd StatusCommand) (*models.Complaint, error) {
	if !id.IsAdmin {
		return nil, ErrPermission
	}

	v := &validation{}
	if !models.ValidStatus(cmd.Status) {
		v.add("status", "invalid status")
	}
	if len(cmd.AssignedTo) > config.MaxAssignedToLen {
		v.add("assigned_to", "assignee name is too long")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	c, err := s.fetch(complaintID)
	if err != nil {
		return nil, err
	}

	oldStatus := c.Status
	c.Status = cmd.Status
	c.AssignedTo = cmd.AssignedTo
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}

	if c.UserID != nil {
		s.Notifier.StatusChanged(c, oldStatus, cmd.Status)
	}
	return c, nil
}

// AddNotes replaces the admin notes on a complaint. Staff only.
func (s *Service) AddNotes(id Identity, complaintID uint, cmd NotesCommand) (*models.Complaint, error) {
	if !id.IsAdmin {
		return nil, ErrPermission
	}

	v := &validation{}
	if cmd.Notes == "" {
		v.add("admin_notes", "notes are required")
	} else if len(cmd.Notes) > config.MaxAdminNotesLen {
		v.add("admin_notes", "notes must be at most 1000 characters")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	c, err := s.fetch(complaintID)
	if err != nil {
		return nil, err
	}
	c.AdminNotes = cmd.Notes
	if err := s.Storage.SaveComplaint(c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns a page of complaints. Scope "mine" requires an
// authenticated caller, scope "all" requires staff and widens the
// search to submitter identity.
func (s *Service) List(id Identity, q ListQuery) (*Page, error) {
	v := &validation{}
	if q.Status != "" && !models.ValidStatus(q.Status) {
		v.add("status", "invalid status")
	}
	if q.Priority != "" && !models.ValidPriority(q.Priority) {
		v.add("priority", "invalid priority")
	}
	if q.Category != "" && !models.ValidCategory(q.Category) {
		v.add("category", "invalid category")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	f := storage.ComplaintFilter{
		Status:   q.Status,
		Priority: q.Priority,
		Category: q.Category,
		Search:   q.Search,
		Page:     page,
	}

	switch q.Scope {
	case ScopeAll:
		if !id.IsAdmin {
			return nil, ErrPermission
		}
		f.SearchSubmitter = true
		f.PerPage = config.AdminComplaintPageSize
	case ScopeMine, "":
		if !id.Authenticated() {
			return nil, ErrPermission
		}
		f.UserID = id.UserID
		f.PerPage = config.PersonalPageSize
	default:
		return nil, &ValidationError{Fields: map[string]string{"scope": "invalid scope"}}
	}

	items, total, err := s.Storage.ListComplaints(f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
	return &Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    f.PerPage,
		TotalPages: totalPages,
	}, nil
}

// storeUploads writes blobs before their records, per the durability
// rule: a crash in between leaves an orphaned blob, not a dangling
// attachment row.
func (s *Service) storeUploads(c *models.Complaint, uploads []Upload) error {
	for _, u := range uploads {
		path, size, err := s.Blobs.Save(u.Name, u.Content)
		if err != nil {
			return err
		}
		att := &models.Attachment{
			ComplaintID:  c.ID,
			OriginalName: u.Name,
			FilePath:     path,
			FileType:     u.ContentType,
			FileSize:     size,
		}
		if err := s.Storage.CreateAttachment(att); err != nil {
			log.Printf("ERROR: Attachment record failed for complaint %d, blob %s is orphaned: %v", c.ID, path, err)
			return err
		}
		c.Attachments = append(c.Attachments, *att)
	}
	return nil
}

func (s *Service) removeAttachment(att *models.Attachment) error {
	if err := s.Storage.DeleteAttachment(att); err != nil {
		return err
	}
	if err := s.Blobs.Remove(att.FilePath); err != nil {
		log.Printf("ERROR: Failed to remove blob %s for attachment %d: %v", att.FilePath, att.ID, err)
	}
	return nil
}

// refreshTitle recomputes the owner's title from the live complaint
// count. Never incremental, so it self-corrects after deletions.
func (s *Service) refreshTitle(userID uint) error {
	count, err := s.Storage.CountComplaintsForUser(userID)
	if err != nil {
		return err
	}
	return s.Storage.UpdateUserTitle(userID, s.bands().ForCount(int(count)))
}

func (s *Service) bands() title.Bands {
	if len(s.Bands) > 0 {
		return s.Bands
	}
	return title.DefaultBands
}

func (s *Service) fetch(complaintID uint) (*models.Complaint, error) {
	c, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func findAttachment(c *models.Complaint, attID uint) *models.Attachment {
	for i := range c.Attachments {
		if c.Attachments[i].ID == attID {
			return &c.Attachments[i]
		}
	}
	return nil
}
