package booking

import (
	"slotbook/models"
)

// legalTransitions enumerates the edges of the appointment state machine.
// cancelled and completed are terminal.
var legalTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted},
}

// transitionAllowed reports whether the state machine has an edge from the
// appointment's current status to target.
func transitionAllowed(current, target string) bool {
	for _, next := range legalTransitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// actorCanTransition is the capability predicate for status changes:
// confirm and complete belong to the provider, cancel to either participant.
// Non-participants can never transition.
func actorCanTransition(actorID string, appt *models.Appointment, target string) bool {
	switch target {
	case models.StatusConfirmed, models.StatusCompleted:
		return actorID == appt.ProviderID
	case models.StatusCancelled:
		return actorID == appt.ProviderID || actorID == appt.RequesterID
	default:
		return false
	}
}
