package routes

import (
	"net/http"
	"time"

	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers registered on the router.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Payment      *handlers.PaymentHandler
	Coupon       *handlers.CouponHandler
	Notification *handlers.NotificationHandler
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/slots", hb.Booking.GetBookedSlots)
		api.PUT("/:id/status", hb.Booking.UpdateBookingStatus)
	}
}

// RegisterPaymentRoutes registers payment verification endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/verify", hb.Payment.VerifyPayment)
	}
}

// RegisterCouponRoutes registers coupon verification endpoints.
func RegisterCouponRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/coupons")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/verify", hb.Coupon.VerifyCoupon)
	}
}

// RegisterNotificationRoutes registers the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Notification.ListNotifications)
		api.PUT("/read-all", hb.Notification.MarkAllNotificationsRead)
		api.PUT("/:id/read", hb.Notification.MarkNotificationRead)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterCouponRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
