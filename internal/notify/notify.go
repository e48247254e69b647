// Package notify delivers status-change and high-priority notifications.
// Dispatch is fire-and-forget: events go onto a buffered channel and a
// background loop drains it, so request handlers never block on mail
// delivery and delivery failures never surface to the caller.
package notify

import (
	"log"

	"complainthub/backend/internal/models"
)

// Mailer sends a single plain-text message.
type Mailer interface {
	Send(to, subject, body string) error
}

// Alerter mirrors urgent events to an out-of-band staff channel.
type Alerter interface {
	Alert(text string) error
}

type statusChangedEvent struct {
	complaint models.Complaint
	oldStatus string
	newStatus string
}

type highPriorityEvent struct {
	complaint models.Complaint
	admins    []models.User
}

type receiptEvent struct {
	complaint models.Complaint
}

// Dispatcher is the notification run loop.
type Dispatcher struct {
	events  chan any
	mailer  Mailer
	alerter Alerter
	baseURL string
}

// NewDispatcher creates a dispatcher. alerter may be nil when no staff
// channel is configured.
func NewDispatcher(mailer Mailer, alerter Alerter, baseURL string) *Dispatcher {
	return &Dispatcher{
		events:  make(chan any, 64),
		mailer:  mailer,
		alerter: alerter,
		baseURL: baseURL,
	}
}

// Run drains the event channel until Close is called. Meant to run as a
// goroutine from main.
func (d *Dispatcher) Run() {
	for ev := range d.events {
		switch e := ev.(type) {
		case statusChangedEvent:
			d.deliverStatusChanged(e)
		case highPriorityEvent:
			d.deliverHighPriority(e)
		case receiptEvent:
			d.deliverReceipt(e)
		}
	}
}

// Close stops the run loop once queued events are drained.
func (d *Dispatcher) Close() {
	close(d.events)
}

// StatusChanged queues a status-change notification to the complaint's
// owner. The complaint is copied so later mutations don't race the loop.
func (d *Dispatcher) StatusChanged(c *models.Complaint, oldStatus, newStatus string) {
	d.enqueue(statusChangedEvent{complaint: *c, oldStatus: oldStatus, newStatus: newStatus})
}

// HighPriorityAlert queues one notification per admin account, plus a
// single staff-channel alert if one is configured.
func (d *Dispatcher) HighPriorityAlert(c *models.Complaint, admins []models.User) {
	d.enqueue(highPriorityEvent{complaint: *c, admins: admins})
}

// SubmissionReceipt queues a confirmation mail to a guest submitter.
func (d *Dispatcher) SubmissionReceipt(c *models.Complaint) {
	d.enqueue(receiptEvent{complaint: *c})
}

func (d *Dispatcher) enqueue(ev any) {
	select {
	case d.events <- ev:
	default:
		// Lossy notifications are acceptable; lost state mutations are not.
		log.Printf("WARN: Notification queue full, dropping event %T", ev)
	}
}

func (d *Dispatcher) deliverStatusChanged(e statusChangedEvent) {
	c := &e.complaint
	if c.User == nil {
		// No delivery path for guest complaints on status changes.
		return
	}
	subject, body := statusChangedMail(c, e.oldStatus, e.newStatus, d.baseURL)
	d.send(c.User.Email, subject, body)
}

func (d *Dispatcher) deliverHighPriority(e highPriorityEvent) {
	c := &e.complaint
	subject, body := highPriorityMail(c, d.baseURL)
	for _, admin := range e.admins {
		d.send(admin.Email, subject, body)
	}

	if d.alerter != nil {
		if err := d.alerter.Alert(highPriorityAlertText(c)); err != nil {
			log.Printf("ERROR: Failed to send staff alert for complaint %d: %v", c.ID, err)
		}
	}
}

func (d *Dispatcher) deliverReceipt(e receiptEvent) {
	c := &e.complaint
	subject, body := receiptMail(c, d.baseURL)
	d.send(c.GuestEmail, subject, body)
}

func (d *Dispatcher) send(to, subject, body string) {
	if d.mailer == nil {
		return
	}
	if err := d.mailer.Send(to, subject, body); err != nil {
		log.Printf("ERROR: Failed to send mail %q to %s: %v", subject, to, err)
	}
}
