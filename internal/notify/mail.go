package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"complainthub/backend/internal/models"
)

// SMTPMailer sends plain-text mail over SMTP.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg))
}

func statusChangedMail(c *models.Complaint, oldStatus, newStatus, baseURL string) (subject, body string) {
	subject = fmt.Sprintf("Complaint #%d Status Updated", c.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s!\n\n", c.SubmitterName())
	fmt.Fprintf(&b, "We wanted to update you on your complaint: %q\n", c.Title)
	fmt.Fprintf(&b, "Status changed from %s to %s.\n", oldStatus, newStatus)
	if c.AdminNotes != "" {
		fmt.Fprintf(&b, "\nAdmin notes: %s\n", c.AdminNotes)
	}
	if c.AssignedTo != "" {
		fmt.Fprintf(&b, "\nYour complaint has been assigned to: %s\n", c.AssignedTo)
	}
	fmt.Fprintf(&b, "\nView complaint details: %s/complaints/%d\n", baseURL, c.ID)
	b.WriteString("\nThank you for using ComplaintHub!\n")
	return subject, b.String()
}

func highPriorityMail(c *models.Complaint, baseURL string) (subject, body string) {
	subject = fmt.Sprintf("High Priority Complaint #%d Submitted", c.ID)

	var b strings.Builder
	b.WriteString("Hello Admin!\n\n")
	b.WriteString("A new high priority complaint has been submitted and requires immediate attention.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", c.Title)
	fmt.Fprintf(&b, "Category: %s\n", c.Category)
	fmt.Fprintf(&b, "Submitted by: %s\n", c.SubmitterName())
	fmt.Fprintf(&b, "Description: %s\n", truncate(c.Description, 200))
	fmt.Fprintf(&b, "\nReview complaint: %s/admin/complaints/%d\n", baseURL, c.ID)
	b.WriteString("\nPlease review and assign this complaint as soon as possible.\n")
	return subject, b.String()
}

func receiptMail(c *models.Complaint, baseURL string) (subject, body string) {
	subject = fmt.Sprintf("Complaint #%d Received", c.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s!\n\n", c.GuestName)
	fmt.Fprintf(&b, "Your complaint %q has been received and is pending review.\n", c.Title)
	fmt.Fprintf(&b, "\nTrack it here: %s/complaints/%d?token=%s\n", baseURL, c.ID, c.GuestToken)
	b.WriteString("Keep this link private; anyone holding it can view the complaint.\n")
	b.WriteString("\nThank you for using ComplaintHub!\n")
	return subject, b.String()
}

func highPriorityAlertText(c *models.Complaint) string {
	return fmt.Sprintf("High priority complaint #%d (%s): %s - submitted by %s",
		c.ID, c.Category, c.Title, c.SubmitterName())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
