package booking

import (
	"context"
	"time"
)

type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, status BookingStatus, notes string) error
	QueryByTrainerAndDateRange(ctx context.Context, trainerID string, from, to time.Time) ([]Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	ListClientIDsByTrainer(ctx context.Context, trainerID string) ([]string, error)
}
