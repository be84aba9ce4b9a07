package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"slotbook/models"
	"slotbook/services/coupon"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeApptRepo is an in-memory AppointmentRepository.
type fakeApptRepo struct {
	mu    sync.Mutex
	appts map[string]*models.Appointment

	// createDelay widens the check-then-insert window for race tests.
	createDelay time.Duration
	createErr   error
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

func (r *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.createDelay > 0 {
		time.Sleep(r.createDelay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	cp := *appt
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found: %w", id, mongo.ErrNoDocuments)
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) GetActiveByProviderAndDate(_ context.Context, providerID, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ProviderID == providerID && a.Date == date && a.Status != models.StatusCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByParticipant(_ context.Context, actorID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.RequesterID == actorID || a.ProviderID == actorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) UpdateStatus(_ context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found: %w", id, mongo.ErrNoDocuments)
	}
	appt.Status = status
	cp := *appt
	return &cp, nil
}

func (r *fakeApptRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appts)
}

// fakeNotifier records dispatched notifications.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (n *fakeNotifier) Notify(_ context.Context, recipientID, senderID, kind, message, link string) (*models.Notification, error) {
	if n.err != nil {
		return nil, n.err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	notif := models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        kind,
		Message:     message,
		Link:        link,
		CreatedAt:   time.Now(),
	}
	n.sent = append(n.sent, notif)
	return &notif, nil
}

func (n *fakeNotifier) List(context.Context, string) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (n *fakeNotifier) MarkRead(context.Context, string, string) error { return nil }

func (n *fakeNotifier) MarkAllRead(context.Context, string) (int64, error) { return 0, nil }

func (n *fakeNotifier) byType(kind string) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []models.Notification
	for _, s := range n.sent {
		if s.Type == kind {
			out = append(out, s)
		}
	}
	return out
}

// fakeCoupons records MarkUsed calls.
type fakeCoupons struct {
	mu          sync.Mutex
	markedCodes []string
	markErr     error
}

func (c *fakeCoupons) Redeem(context.Context, string, float64) (*coupon.Redemption, error) {
	return nil, nil
}

func (c *fakeCoupons) MarkUsed(_ context.Context, code string) error {
	if c.markErr != nil {
		return c.markErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markedCodes = append(c.markedCodes, code)
	return nil
}

// fakeReminders records scheduled reminders.
type fakeReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (f *fakeReminders) ScheduleAppointmentReminder(appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, appt.ID)
	return nil
}
