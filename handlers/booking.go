package handlers

import (
	"net/http"

	"slotbook/middleware"
	"slotbook/models"
	"slotbook/services/booking"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking orchestrator over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. The requester is always the
// authenticated actor.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.RequesterID = middleware.ActorID(c)

	appt, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// GetBookedSlots handles GET /api/bookings/slots?providerId&date.
func (h *BookingHandler) GetBookedSlots(c *gin.Context) {
	providerID := c.Query("providerId")
	date := c.Query("date")

	slots, err := h.Service.BookedSlots(c.Request.Context(), providerID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ListBookings handles GET /api/bookings for the authenticated actor.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	appts, err := h.Service.ListForActor(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": appts})
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appt, err := h.Service.ChangeStatus(c.Request.Context(), middleware.ActorID(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
