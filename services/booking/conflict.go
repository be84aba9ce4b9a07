package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/utils"
)

// SlotDurationMinutes is the fixed length of every bookable slot.
const SlotDurationMinutes = 60

// SlotConflictChecker decides bookability of a time range against the
// currently persisted appointments. It is a pure predicate over store state;
// callers must serialize check-then-insert themselves (see slotlock.go).
type SlotConflictChecker struct {
	Repo appointmentRepo.AppointmentRepository
}

// Check validates the requested range for a provider on a date. It rejects
// malformed times, ranges that are not exactly 60 minutes, and ranges that
// overlap a non-cancelled appointment.
func (c *SlotConflictChecker) Check(ctx context.Context, providerID, date, startTime, endTime string) error {
	start, err := parseClock(startTime)
	if err != nil {
		return utils.NewValidationError(fmt.Sprintf("invalid start time %q", startTime))
	}
	end, err := parseClock(endTime)
	if err != nil {
		return utils.NewValidationError(fmt.Sprintf("invalid end time %q", endTime))
	}
	if end-start != SlotDurationMinutes {
		return utils.NewValidationError("slot duration must be exactly 60 minutes")
	}

	existing, err := c.Repo.GetActiveByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return fmt.Errorf("conflict check failed: %w", err)
	}
	for _, appt := range existing {
		s, err := parseClock(appt.StartTime)
		if err != nil {
			continue
		}
		e, err := parseClock(appt.EndTime)
		if err != nil {
			continue
		}
		if overlaps(start, end, s, e) {
			return utils.NewConflictError("slot already taken")
		}
	}
	return nil
}

// overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Back-to-back ranges do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// parseClock converts a 24-hour "HH:MM" wall-clock string to minutes from midnight.
func parseClock(v string) (int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock value %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed minute in %q", v)
	}
	return h*60 + m, nil
}
