// File: slotbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/config"
	"slotbook/cron"
	"slotbook/database"
	appointmentRepo "slotbook/database/repository/appointment"
	couponRepo "slotbook/database/repository/coupon"
	notificationRepo "slotbook/database/repository/notification"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/booking"
	"slotbook/services/coupon"
	"slotbook/services/notification"
	"slotbook/services/payment"
	"slotbook/services/tasks"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRealtime()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	cpnRepo := couponRepo.NewMongoCouponRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()

	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	if err := cpnRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure coupon indexes: %v", err)
	}
	if err := notifRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure notification indexes: %v", err)
	}

	// services.
	realtime := notification.NewRedisRealtimePublisher(utils.GetRealtimeClient())
	notificationService, err := notification.NewDefaultNotificationService(notifRepo, realtime, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	couponService := &coupon.DefaultCouponService{Repo: cpnRepo}
	verifier := payment.NewVerifier(config.AppConfig.PaymentSecret)

	reminderScheduler := tasks.NewScheduler(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer reminderScheduler.Close()

	bookingService := booking.NewDefaultBookingService(
		apptRepo,
		verifier,
		couponService,
		notificationService,
		reminderScheduler,
		logger,
	)

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Health snapshots for the /health endpoint.
	utils.StartHealthMonitor(utils.GetRealtimeClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Payment:      handlers.NewPaymentHandler(verifier),
		Coupon:       handlers.NewCouponHandler(couponService),
		Notification: handlers.NewNotificationHandler(notificationService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
