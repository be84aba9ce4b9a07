package booking

import (
	"context"
	"errors"
	"fmt"

	"slotbook/models"
	"slotbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// validStatuses are the targets a transition request may name.
var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusCancelled: true,
	models.StatusCompleted: true,
}

// ChangeStatus applies the appointment state machine for the acting
// participant and persists the transition. The payment subdocument is never
// touched by a transition.
func (svc *DefaultBookingService) ChangeStatus(ctx context.Context, actorID, appointmentID, target string) (*models.Appointment, error) {
	if !validStatuses[target] {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown status %q", target))
	}

	appt, err := svc.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("appointment not found")
		}
		return nil, err
	}

	if actorID != appt.RequesterID && actorID != appt.ProviderID {
		return nil, utils.NewForbiddenError("not a participant of this appointment")
	}
	if !transitionAllowed(appt.Status, target) {
		return nil, utils.NewForbiddenError(fmt.Sprintf("cannot move appointment from %s to %s", appt.Status, target))
	}
	if !actorCanTransition(actorID, appt, target) {
		return nil, utils.NewForbiddenError("actor may not perform this transition")
	}

	updated, err := svc.Repo.UpdateStatus(ctx, appointmentID, target)
	if err != nil {
		return nil, fmt.Errorf("failed to persist status change: %w", err)
	}

	svc.notifyStatusChange(ctx, actorID, updated)

	if target == models.StatusConfirmed && svc.Reminders != nil {
		if err := svc.Reminders.ScheduleAppointmentReminder(updated); err != nil {
			svc.Logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// notifyStatusChange informs the non-acting participant of the transition.
func (svc *DefaultBookingService) notifyStatusChange(ctx context.Context, actorID string, appt *models.Appointment) {
	recipient := appt.RequesterID
	if actorID == appt.RequesterID {
		recipient = appt.ProviderID
	}

	msg := fmt.Sprintf("Your appointment on %s %s–%s is now %s", appt.Date, appt.StartTime, appt.EndTime, appt.Status)
	link := "/appointments/" + appt.ID
	if _, err := svc.NotificationSvc.Notify(ctx, recipient, actorID, models.NotifStatusChange, msg, link); err != nil {
		svc.Logger.Error("failed to notify status change",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
