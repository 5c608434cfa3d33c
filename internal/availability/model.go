package availability

import "time"

// WeeklyAvailability is a trainer's recurring working-hours template for a
// single day of week (0 = Sunday). At most one record exists per
// (trainer, day); the record is never deleted, only toggled off.
type WeeklyAvailability struct {
	ID          string    `db:"id" json:"id"`
	TrainerID   string    `db:"trainer_id" json:"trainerId"`
	DayOfWeek   int       `db:"day_of_week" json:"dayOfWeek"`
	StartTime   string    `db:"start_time" json:"startTime"`
	EndTime     string    `db:"end_time" json:"endTime"`
	IsAvailable bool      `db:"is_available" json:"isAvailable"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// BlockedTime removes availability for a wall-clock window on one specific
// date. It matches a query date by calendar-day equality, never by instant
// range. Deactivated blocks stay in the store.
type BlockedTime struct {
	ID        string    `db:"id" json:"id"`
	TrainerID string    `db:"trainer_id" json:"trainerId"`
	Date      time.Time `db:"date" json:"date"`
	StartTime string    `db:"start_time" json:"startTime"`
	EndTime   string    `db:"end_time" json:"endTime"`
	Reason    string    `db:"reason" json:"reason"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TrainerAvailability is the raw schedule for a trainer: the weekly template
// plus currently active blocks.
type TrainerAvailability struct {
	WeeklyAvailability []WeeklyAvailability `json:"weeklyAvailability"`
	BlockedTimes       []BlockedTime        `json:"blockedTimes"`
}

const (
	ReasonBlocked = "blocked"
	ReasonBooked  = "booked"
)

// TimeSlot is a derived wall-clock interval on some date, tagged available
// or busy. Slots are pure projections of the schedule stores; they carry no
// identity and must not be cached beyond the request that produced them.
type TimeSlot struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Reason      string `json:"reason,omitempty"`
	BookingID   string `json:"bookingId,omitempty"`
}

// NormalizedReason maps the engine's internal busy reasons onto the values
// clients render. Both "blocked" and "booked" surface as "trainer-busy".
func (s TimeSlot) NormalizedReason() string {
	switch s.Reason {
	case ReasonBlocked, ReasonBooked:
		return "trainer-busy"
	default:
		return s.Reason
	}
}

// DayAvailability is one day's resolved slots for a trainer.
type DayAvailability struct {
	TrainerID      string     `json:"trainerId"`
	TrainerName    string     `json:"trainerName"`
	Date           time.Time  `json:"date"`
	AvailableSlots []TimeSlot `json:"availableSlots"`
	BusySlots      []TimeSlot `json:"busySlots"`
}

// NextSlot is one result of the forward slot search.
type NextSlot struct {
	Date          time.Time `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	FormattedDate string    `json:"formattedDate"`
	FormattedTime string    `json:"formattedTime"`
}

type SetAvailabilityRequest struct {
	DayOfWeek   *int   `json:"dayOfWeek" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAvailable bool   `json:"isAvailable"`
}

type BlockTimeRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Reason    string `json:"reason"`
}
