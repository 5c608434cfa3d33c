package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liamkavfc/SculpoDatabase/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Stores a new booking in Pending status. Availability is not re-checked here.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking details"
// @Success      201      {object}  CreateBookingResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Re-run field validation on the partially bound struct so the
		// caller gets per-field errors instead of a bare bind failure.
		if errs := api.ValidateStruct(req); len(errs) > 0 {
			api.RespondWithValidationErrors(c, errs)
			return
		}
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateStatus godoc
// @Summary      Update booking status
// @Description  Overwrites the booking status. Any status is reachable from any other.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string               true  "Booking ID"
// @Param        request    body      UpdateStatusRequest  true  "New status"
// @Success      200        {object}  api.SuccessResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID := c.Param("bookingID")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.service.UpdateBookingStatus(c.Request.Context(), bookingID, BookingStatus(*req.Status), req.Notes)
	switch {
	case errors.Is(err, ErrMissingBookingID) || errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update booking status"})
	default:
		c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Booking status updated"})
	}
}

// SendConfirmation godoc
// @Summary      Queue booking confirmation email
// @Description  Resolves booking, client and trainer, then queues the email. Missing data is logged and skipped.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      202        {object}  api.SuccessResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/confirmation [post]
func (h *Handler) SendConfirmation(c *gin.Context) {
	bookingID := c.Param("bookingID")

	err := h.service.SendBookingConfirmation(c.Request.Context(), bookingID)
	if errors.Is(err, ErrMissingBookingID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to queue confirmation"})
		return
	}

	c.JSON(http.StatusAccepted, api.SuccessResponse{Success: true, Message: "Confirmation queued"})
}

// GetUserBookings godoc
// @Summary      List a user's bookings
// @Description  Returns bookings where the user is the client or the trainer, newest first.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        userID  path      string  true  "User ID"
// @Success      200     {array}   BookingView
// @Failure      400     {object}  api.ErrorResponse
// @Router       /users/{userID}/bookings [get]
func (h *Handler) GetUserBookings(c *gin.Context) {
	userID := c.Param("userID")

	views, err := h.service.GetBookingsByUserID(c.Request.Context(), userID)
	if errors.Is(err, ErrMissingUserID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetDashboard godoc
// @Summary      Trainer dashboard metrics
// @Description  Returns the trainer's upcoming bookings and a thirty-day booking count.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      string  true  "Trainer ID"
// @Success      200        {object}  DashboardMetrics
// @Failure      400        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	trainerID := c.Param("trainerID")

	dashboard, err := h.service.GetDashboardMetrics(c.Request.Context(), trainerID)
	if errors.Is(err, ErrMissingUserID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetClients godoc
// @Summary      List a trainer's clients
// @Description  Returns the distinct clients that have booked with the trainer.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        trainerID  path      string  true  "Trainer ID"
// @Success      200        {array}   profile.Profile
// @Failure      400        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/clients [get]
func (h *Handler) GetClients(c *gin.Context) {
	trainerID := c.Param("trainerID")

	clients, err := h.service.GetClientsByTrainerID(c.Request.Context(), trainerID)
	if errors.Is(err, ErrMissingUserID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load clients"})
		return
	}

	c.JSON(http.StatusOK, clients)
}
