package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"slotbook/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "reminder:appointment"

// ReminderLeadTime is how long before the slot start the reminder fires.
const ReminderLeadTime = time.Hour

// ReminderPayload carries the appointment details a reminder needs.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	RequesterID   string `json:"requesterId"`
	ProviderID    string `json:"providerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}

// NewReminderTask builds an asynq task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks onto the Redis-backed queue.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler(redisOpt asynq.RedisClientOpt) *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpt)}
}

func (s *Scheduler) Close() error {
	return s.client.Close()
}

// ScheduleAppointmentReminder enqueues a reminder an hour before the slot
// starts. Appointments already inside the lead window are skipped.
func (s *Scheduler) ScheduleAppointmentReminder(appt *models.Appointment) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("cannot parse appointment start: %w", err)
	}

	fireAt := startsAt.Add(-ReminderLeadTime)
	if fireAt.Before(time.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(ReminderPayload{
		AppointmentID: appt.ID,
		RequesterID:   appt.RequesterID,
		ProviderID:    appt.ProviderID,
		Date:          appt.Date,
		StartTime:     appt.StartTime,
	}, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
