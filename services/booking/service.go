package booking

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"
	"slotbook/utils"

	"go.uber.org/zap"
)

// Book runs the booking sequence. The first failing check wins and nothing
// is persisted on rejection. The conflict check and the insert are held
// under the per-(provider,date) lock so concurrent overlapping requests
// cannot both commit.
func (svc *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	if req.RequesterID == "" || req.ProviderID == "" {
		return nil, utils.NewValidationError("requester and provider are required")
	}
	if req.RequesterID == req.ProviderID {
		return nil, utils.NewValidationError("cannot book an appointment with yourself")
	}

	release := svc.locks.acquire(req.ProviderID, req.Date)
	defer release()

	if err := svc.Conflicts.Check(ctx, req.ProviderID, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	var details *models.PaymentDetails
	paymentCaptured := false
	if req.Payment != nil {
		details = &models.PaymentDetails{
			OrderRef:   req.Payment.OrderRef,
			PaymentRef: req.Payment.PaymentRef,
			Amount:     req.Payment.Amount,
			Status:     models.PaymentPending,
		}
		if req.Payment.PaymentRef != "" {
			if err := svc.Verifier.Verify(req.Payment.OrderRef, req.Payment.PaymentRef, req.Payment.Signature); err != nil {
				// Fatal to the whole booking: nothing persisted, coupon untouched.
				return nil, err
			}
			details.Status = models.PaymentCaptured
			details.PlatformFee, details.ProviderEarnings = models.SplitAmount(req.Payment.Amount)
			paymentCaptured = true
		}
	}

	// The discount was already applied when the payment order was created;
	// here we only settle the usage counter. A failure at this point is a
	// reconciliation gap, not a booking failure.
	if paymentCaptured && req.CouponCode != "" {
		if err := svc.Coupons.MarkUsed(ctx, req.CouponCode); err != nil {
			svc.Logger.Warn("coupon usage not recorded, needs reconciliation",
				zap.String("couponCode", req.CouponCode),
				zap.String("orderRef", req.Payment.OrderRef),
				zap.Error(err))
		}
	}

	appt := &models.Appointment{
		RequesterID: req.RequesterID,
		ProviderID:  req.ProviderID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.StatusPending,
		Payment:     details,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}
	if err := svc.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	svc.notifyBooked(ctx, appt, paymentCaptured)

	return appt, nil
}

// notifyBooked fans out the creation notifications. Failures are logged;
// the appointment is already committed.
func (svc *DefaultBookingService) notifyBooked(ctx context.Context, appt *models.Appointment, paymentCaptured bool) {
	link := "/appointments/" + appt.ID

	msg := fmt.Sprintf("New booking request for %s %s–%s", appt.Date, appt.StartTime, appt.EndTime)
	if _, err := svc.NotificationSvc.Notify(ctx, appt.ProviderID, appt.RequesterID, models.NotifBookingRequest, msg, link); err != nil {
		svc.Logger.Error("failed to notify provider of booking request",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	if paymentCaptured {
		msg := fmt.Sprintf("Payment of %.2f confirmed for your booking on %s", appt.Payment.Amount, appt.Date)
		if _, err := svc.NotificationSvc.Notify(ctx, appt.RequesterID, "", models.NotifPaymentConfirmed, msg, link); err != nil {
			svc.Logger.Error("failed to notify requester of payment",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
}

// BookedSlots returns the non-cancelled ranges for a provider's day.
func (svc *DefaultBookingService) BookedSlots(ctx context.Context, providerID, date string) ([]models.BookedSlot, error) {
	if providerID == "" || date == "" {
		return nil, utils.NewValidationError("providerId and date are required")
	}
	appts, err := svc.Repo.GetActiveByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	slots := make([]models.BookedSlot, 0, len(appts))
	for _, a := range appts {
		slots = append(slots, models.BookedSlot{StartTime: a.StartTime, EndTime: a.EndTime})
	}
	return slots, nil
}

// ListForActor returns the actor's appointments, newest first.
func (svc *DefaultBookingService) ListForActor(ctx context.Context, actorID string) ([]models.Appointment, error) {
	return svc.Repo.ListByParticipant(ctx, actorID)
}
