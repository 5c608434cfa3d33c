package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/liamkavfc/SculpoDatabase/internal/api"
	"github.com/liamkavfc/SculpoDatabase/internal/timeutil"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SetAvailability godoc
// @Summary      Set weekly availability
// @Description  Creates or replaces the trainer's recurring template for one day of week.
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      string                  true  "Trainer ID"
// @Param        request    body      SetAvailabilityRequest  true  "Availability template"
// @Success      200        {object}  api.SuccessResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [put]
func (h *Handler) SetAvailability(c *gin.Context) {
	trainerID := c.Param("trainerID")

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	err := h.service.SetWeeklyAvailability(c.Request.Context(), trainerID, req)
	if errors.Is(err, ErrMissingTrainerID) || errors.Is(err, ErrInvalidDayOfWeek) || errors.Is(err, ErrInvalidTimeRange) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Availability updated successfully"})
}

// GetAvailability godoc
// @Summary      Get trainer schedule
// @Description  Returns the weekly template and active blocked times.
// @Tags         availability
// @Produce      json
// @Param        trainerID  path      string  true  "Trainer ID"
// @Success      200        {object}  TrainerAvailability
// @Failure      400        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	trainerID := c.Param("trainerID")

	schedule, err := h.service.GetTrainerAvailability(c.Request.Context(), trainerID)
	if errors.Is(err, ErrMissingTrainerID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// BlockTime godoc
// @Summary      Block a time slot
// @Description  Marks a one-off window on a specific date as unavailable.
// @Tags         availability
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        trainerID  path      string            true  "Trainer ID"
// @Param        request    body      BlockTimeRequest  true  "Window to block"
// @Success      201        {object}  api.CreatedResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/blocked-times [post]
func (h *Handler) BlockTime(c *gin.Context) {
	trainerID := c.Param("trainerID")

	var req BlockTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	id, err := h.service.BlockTimeSlot(c.Request.Context(), trainerID, req)
	if errors.Is(err, ErrMissingFields) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to block time slot"})
		return
	}

	c.JSON(http.StatusCreated, api.CreatedResponse{Success: true, Message: "Time slot blocked successfully", ID: id})
}

// UnblockTime godoc
// @Summary      Remove a blocked time
// @Description  Deactivates a blocked time slot. The record is retained.
// @Tags         availability
// @Security     BearerAuth
// @Produce      json
// @Param        blockID  path      string  true  "Blocked time ID"
// @Success      200      {object}  api.SuccessResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /blocked-times/{blockID} [delete]
func (h *Handler) UnblockTime(c *gin.Context) {
	blockID := c.Param("blockID")

	err := h.service.UnblockTimeSlot(c.Request.Context(), blockID)
	if errors.Is(err, ErrMissingFields) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to unblock time slot"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true, Message: "Time slot unblocked successfully"})
}

// GetAvailabilityForRange godoc
// @Summary      Resolve availability for a date range
// @Description  Returns per-day available and busy slots between start and end dates.
// @Tags         availability
// @Produce      json
// @Param        trainerID  path      string  true   "Trainer ID"
// @Param        start      query     string  true   "Start date (YYYY-MM-DD)"
// @Param        end        query     string  true   "End date (YYYY-MM-DD)"
// @Param        serviceId  query     string  false  "Service ID (accepted, not filtered on)"
// @Success      200        {array}   DayAvailability
// @Failure      400        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability/range [get]
func (h *Handler) GetAvailabilityForRange(c *gin.Context) {
	trainerID := c.Param("trainerID")

	start, okStart := timeutil.Normalize(c.Query("start"))
	end, okEnd := timeutil.Normalize(c.Query("end"))
	if !okStart || !okEnd || end.Before(start) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date range"})
		return
	}

	days, err := h.service.GetAvailabilityForRange(c.Request.Context(), trainerID, start, end, c.Query("serviceId"))
	if errors.Is(err, ErrMissingTrainerID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to resolve availability"})
		return
	}

	if days == nil {
		days = []DayAvailability{}
	}
	c.JSON(http.StatusOK, days)
}

// GetNextAvailableSlots godoc
// @Summary      Find the next free slots
// @Description  Scans forward up to 30 days for whole days with no blocks or bookings.
// @Tags         availability
// @Produce      json
// @Param        trainerID  path      string  true   "Trainer ID"
// @Param        count      query     int     false  "Number of slots (default 3)"
// @Param        serviceId  query     string  false  "Service ID (accepted, not filtered on)"
// @Success      200        {array}   NextSlot
// @Failure      400        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID}/availability/slots/next [get]
func (h *Handler) GetNextAvailableSlots(c *gin.Context) {
	trainerID := c.Param("trainerID")

	count := 3
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid count"})
			return
		}
		count = parsed
	}

	slots, err := h.service.GetNextAvailableSlots(c.Request.Context(), trainerID, count, c.Query("serviceId"))
	if errors.Is(err, ErrMissingTrainerID) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to find available slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}
