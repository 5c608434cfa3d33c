package availability

import (
	"context"
	"time"
)

type Repository interface {
	UpsertWeeklyAvailability(ctx context.Context, w *WeeklyAvailability) error
	GetWeeklyAvailability(ctx context.Context, trainerID string) ([]WeeklyAvailability, error)
	InsertBlockedTime(ctx context.Context, b *BlockedTime) (string, error)
	GetActiveBlockedTimes(ctx context.Context, trainerID string) ([]BlockedTime, error)
	DeactivateBlockedTime(ctx context.Context, id string) error
}

// BookingSource is the booking-store collaborator consumed by the resolution
// engine. The engine only ever reads.
type BookingSource interface {
	QueryByTrainerAndDateRange(ctx context.Context, trainerID string, from, to time.Time) ([]BookingRecord, error)
}

// BookingRecord is the slice of a booking the engine needs for conflict
// checks.
type BookingRecord struct {
	ID          string
	BookingDate time.Time
	StartTime   time.Time
	EndTime     time.Time
	Blocks      bool
}
