package booking

import "time"

// BookingStatus follows the numeric wire values used by the stored
// documents; do not reorder.
type BookingStatus int

const (
	StatusPending BookingStatus = iota
	StatusConfirmed
	StatusInProgress
	StatusCompleted
	StatusCancelledByClient
	StatusCancelledByTrainer
	StatusNoShow
	StatusRejected
)

func (s BookingStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelledByClient:
		return "CancelledByClient"
	case StatusCancelledByTrainer:
		return "CancelledByTrainer"
	case StatusNoShow:
		return "NoShow"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transition is defined out of s.
// Note: UpdateBookingStatus does not enforce this; see service.go.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelledByClient, StatusCancelledByTrainer, StatusNoShow, StatusRejected:
		return true
	}
	return false
}

// BlocksAvailability reports whether a booking in this status occupies its
// interval for slot computation. Cancelled, rejected and no-show bookings do
// not block.
func (s BookingStatus) BlocksAvailability() bool {
	switch s {
	case StatusCancelledByClient, StatusCancelledByTrainer, StatusNoShow, StatusRejected:
		return false
	}
	return true
}

type Booking struct {
	ID                     string        `db:"id" json:"id"`
	ServiceID              string        `db:"service_id" json:"serviceId"`
	ClientID               string        `db:"client_id" json:"clientId"`
	TrainerID              string        `db:"trainer_id" json:"trainerId"`
	BookingDate            time.Time     `db:"booking_date" json:"bookingDate"`
	StartTime              time.Time     `db:"start_time" json:"startTime"`
	EndTime                time.Time     `db:"end_time" json:"endTime"`
	DeliveryFormatID       string        `db:"delivery_format_id" json:"deliveryFormatId"`
	DeliveryFormatOptionID string        `db:"delivery_format_option_id" json:"deliveryFormatOptionId"`
	Notes                  string        `db:"notes" json:"notes,omitempty"`
	Status                 BookingStatus `db:"status" json:"status"`
	Price                  float64       `db:"price" json:"price"`
	CreatedAt              time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt              time.Time     `db:"updated_at" json:"updatedAt"`
}

// BookingView adds the display fields resolved at read time from the profile
// and service directories. They are recomputed on every read, never trusted
// as stored truth.
type BookingView struct {
	Booking
	ClientName   string `json:"clientName"`
	TrainerName  string `json:"trainerName"`
	ServiceTitle string `json:"serviceTitle"`
}

type CreateBookingRequest struct {
	ServiceID              string    `json:"serviceId" binding:"required"`
	ClientID               string    `json:"clientId" binding:"required"`
	TrainerID              string    `json:"trainerId" binding:"required"`
	BookingDate            time.Time `json:"bookingDate" binding:"required"`
	StartTime              time.Time `json:"startTime" binding:"required"`
	EndTime                time.Time `json:"endTime" binding:"required"`
	DeliveryFormatID       string    `json:"deliveryFormatId"`
	DeliveryFormatOptionID string    `json:"deliveryFormatOptionId"`
	Notes                  string    `json:"notes"`
	Price                  float64   `json:"price"`
}

type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
	Message   string `json:"message" example:"Booking created successfully"`
	Status    string `json:"status" example:"Pending"`
}

type UpdateStatusRequest struct {
	Status *int   `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// DashboardMetrics summarises a trainer's recent and upcoming bookings.
type DashboardMetrics struct {
	UpcomingBookings       []BookingView `json:"upcomingBookings"`
	LastThirtyDaysBookings int           `json:"lastThirtyDaysBookings"`
}
