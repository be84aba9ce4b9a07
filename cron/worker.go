package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"slotbook/config"
	"slotbook/models"
	"slotbook/services/notification"
	"slotbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(notifSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		msg := fmt.Sprintf("Reminder: your appointment starts at %s on %s", p.StartTime, p.Date)
		link := "/appointments/" + p.AppointmentID

		var firstErr error
		for _, recipient := range []string{p.RequesterID, p.ProviderID} {
			if _, err := notifSvc.Notify(ctx, recipient, "", models.NotifReminder, msg, link); err != nil {
				log.Printf("[ReminderHandler] failed to notify %s: %v", recipient, err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		return firstErr
	}
}
