package booking

import (
	"context"
	"time"

	"github.com/liamkavfc/SculpoDatabase/internal/availability"
)

// availabilitySource adapts the booking store to the resolution engine's
// read-only view. Status is collapsed to the single Blocks bit so the engine
// stays ignorant of the lifecycle.
type availabilitySource struct {
	repo Repository
}

func NewAvailabilitySource(repo Repository) availability.BookingSource {
	return &availabilitySource{repo: repo}
}

func (s *availabilitySource) QueryByTrainerAndDateRange(ctx context.Context, trainerID string, from, to time.Time) ([]availability.BookingRecord, error) {
	bookings, err := s.repo.QueryByTrainerAndDateRange(ctx, trainerID, from, to)
	if err != nil {
		return nil, err
	}

	records := make([]availability.BookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, availability.BookingRecord{
			ID:          b.ID,
			BookingDate: b.BookingDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Blocks:      b.Status.BlocksAvailability(),
		})
	}
	return records, nil
}
