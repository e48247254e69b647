package notify

import (
	"fmt"
	"testing"

	"complainthub/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	mails []sentMail
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mails = append(f.mails, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeAlerter struct {
	alerts []string
}

func (f *fakeAlerter) Alert(text string) error {
	f.alerts = append(f.alerts, text)
	return nil
}

func uintPtr(v uint) *uint { return &v }

// drain closes the queue and runs the loop to completion, so tests see
// every queued delivery synchronously.
func drain(d *Dispatcher) {
	d.Close()
	d.Run()
}

// TestHighPriorityAlert_OneMailPerAdmin verifies every admin account
// gets its own mail and the staff channel gets a single alert.
func TestHighPriorityAlert_OneMailPerAdmin(t *testing.T) {
	// Arrange
	mailer := &fakeMailer{}
	alerter := &fakeAlerter{}
	d := NewDispatcher(mailer, alerter, "http://localhost:8080")
	c := &models.Complaint{
		ID:          5,
		Title:       "Server room is on fire",
		Category:    "Service",
		Priority:    models.PriorityHigh,
		Description: "Please send help.",
		GuestName:   "Olena",
		GuestEmail:  "olena@example.com",
	}
	admins := []models.User{
		{ID: 1, Email: "admin1@example.com"},
		{ID: 2, Email: "admin2@example.com"},
		{ID: 3, Email: "admin3@example.com"},
	}

	// Act
	d.HighPriorityAlert(c, admins)
	drain(d)

	// Assert
	assert.Len(t, mailer.mails, 3)
	for i, m := range mailer.mails {
		assert.Equal(t, admins[i].Email, m.to)
		assert.Equal(t, "High Priority Complaint #5 Submitted", m.subject)
		assert.Contains(t, m.body, "Server room is on fire")
		assert.Contains(t, m.body, "Submitted by: Olena")
		assert.Contains(t, m.body, "/admin/complaints/5")
	}
	assert.Len(t, alerter.alerts, 1)
	assert.Contains(t, alerter.alerts[0], "Server room is on fire")
}

// TestHighPriorityAlert_NilAlerter verifies the staff channel is
// optional.
func TestHighPriorityAlert_NilAlerter(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, nil, "http://localhost:8080")

	d.HighPriorityAlert(&models.Complaint{ID: 1, GuestName: "A", GuestEmail: "a@example.com"},
		[]models.User{{Email: "admin@example.com"}})
	drain(d)

	assert.Len(t, mailer.mails, 1)
}

// TestStatusChanged_MailsOwner verifies the owner mail carries the
// transition, notes, assignee and a detail link.
func TestStatusChanged_MailsOwner(t *testing.T) {
	// Arrange
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, nil, "http://localhost:8080")
	c := &models.Complaint{
		ID:         7,
		Title:      "Wrong invoice amount",
		UserID:     uintPtr(4),
		User:       &models.User{ID: 4, Name: "Taras", Email: "taras@example.com"},
		AdminNotes: "Refund issued.",
		AssignedTo: "Iryna",
	}

	// Act
	d.StatusChanged(c, models.StatusPending, models.StatusResolved)
	drain(d)

	// Assert
	assert.Len(t, mailer.mails, 1)
	m := mailer.mails[0]
	assert.Equal(t, "taras@example.com", m.to)
	assert.Equal(t, "Complaint #7 Status Updated", m.subject)
	assert.Contains(t, m.body, "Hello Taras!")
	assert.Contains(t, m.body, "Status changed from Pending to Resolved.")
	assert.Contains(t, m.body, "Admin notes: Refund issued.")
	assert.Contains(t, m.body, "assigned to: Iryna")
	assert.Contains(t, m.body, "http://localhost:8080/complaints/7")
}

// TestStatusChanged_GuestComplaintSkipped verifies nothing goes out when
// the complaint has no registered owner loaded.
func TestStatusChanged_GuestComplaintSkipped(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, nil, "http://localhost:8080")

	d.StatusChanged(&models.Complaint{ID: 9, GuestName: "Olena", GuestEmail: "olena@example.com"},
		models.StatusPending, models.StatusInProgress)
	drain(d)

	assert.Empty(t, mailer.mails)
}

// TestSubmissionReceipt_ContainsTokenLink verifies the guest receipt
// carries the tokenized tracking link.
func TestSubmissionReceipt_ContainsTokenLink(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, nil, "http://localhost:8080")
	c := &models.Complaint{
		ID:         12,
		Title:      "Package never arrived",
		GuestName:  "Olena",
		GuestEmail: "olena@example.com",
		GuestToken: "secret-token",
	}

	d.SubmissionReceipt(c)
	drain(d)

	assert.Len(t, mailer.mails, 1)
	m := mailer.mails[0]
	assert.Equal(t, "olena@example.com", m.to)
	assert.Equal(t, "Complaint #12 Received", m.subject)
	assert.Contains(t, m.body, "http://localhost:8080/complaints/12?token=secret-token")
	assert.Contains(t, m.body, "Keep this link private")
}

// TestEnqueue_FullQueueDropsInsteadOfBlocking verifies the lossy queue:
// once the buffer is full, further events are dropped and the caller
// never blocks.
func TestEnqueue_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, nil, "http://localhost:8080")
	c := &models.Complaint{ID: 1, GuestName: "A", GuestEmail: "a@example.com"}

	for i := 0; i < 70; i++ {
		d.SubmissionReceipt(c)
	}
	drain(d)

	assert.Len(t, mailer.mails, 64)
}

// TestSend_NilMailerIsNoop verifies a dispatcher without a mailer just
// swallows deliveries.
func TestSend_NilMailerIsNoop(t *testing.T) {
	d := NewDispatcher(nil, nil, "http://localhost:8080")
	d.SubmissionReceipt(&models.Complaint{ID: 1, GuestName: "A", GuestEmail: "a@example.com"})
	drain(d)
}

// TestHighPriorityMail_TruncatesLongDescriptions keeps admin mail bodies
// readable for essay-length complaints.
func TestHighPriorityMail_TruncatesLongDescriptions(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += fmt.Sprintf("sentence %d. ", i)
	}
	c := &models.Complaint{ID: 2, Title: "t", Category: "Other", GuestName: "A", Description: long}

	_, body := highPriorityMail(c, "http://localhost:8080")
	assert.Contains(t, body, long[:200]+"...")
	assert.NotContains(t, body, long)
}
