package booking

import (
	"context"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
	"slotbook/services/coupon"
	"slotbook/services/notification"
	"slotbook/services/payment"

	"go.uber.org/zap"
)

// ReminderScheduler enqueues future reminders for confirmed appointments.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt *models.Appointment) error
}

// BookingService is the orchestrator for slot reservations and their lifecycle.
type BookingService interface {
	// Book accepts or rejects a booking request and persists the result.
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	// BookedSlots returns the occupied ranges on a provider's day.
	BookedSlots(ctx context.Context, providerID, date string) ([]models.BookedSlot, error)
	// ListForActor returns all appointments the actor participates in.
	ListForActor(ctx context.Context, actorID string) ([]models.Appointment, error)
	// ChangeStatus runs the appointment state machine for the given actor.
	ChangeStatus(ctx context.Context, actorID, appointmentID, target string) (*models.Appointment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            appointmentRepo.AppointmentRepository
	Conflicts       *SlotConflictChecker
	Verifier        *payment.Verifier
	Coupons         coupon.CouponService
	NotificationSvc notification.NotificationService
	Reminders       ReminderScheduler // optional
	Logger          *zap.Logger

	locks *slotLockStore
}

// NewDefaultBookingService wires the orchestrator and its slot lock store.
func NewDefaultBookingService(
	repo appointmentRepo.AppointmentRepository,
	verifier *payment.Verifier,
	coupons coupon.CouponService,
	notificationSvc notification.NotificationService,
	reminders ReminderScheduler,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:            repo,
		Conflicts:       &SlotConflictChecker{Repo: repo},
		Verifier:        verifier,
		Coupons:         coupons,
		NotificationSvc: notificationSvc,
		Reminders:       reminders,
		Logger:          logger,
		locks:           newSlotLockStore(),
	}
}
