package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

// conflictLookupLimit bounds the booking window read by availability
// queries so a trainer with a pathological history cannot trigger an
// unbounded scan.
const conflictLookupLimit = 50

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	query := `
		INSERT INTO bookings (
			id, service_id, client_id, trainer_id, booking_date,
			start_time, end_time, delivery_format_id, delivery_format_option_id,
			notes, status, price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, service_id, client_id, trainer_id, booking_date,
			start_time, end_time, delivery_format_id, delivery_format_option_id,
			notes, status, price, created_at, updated_at
	`

	id := b.ID
	if id == "" {
		id = uuid.New().String()
	}

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		id, b.ServiceID, b.ClientID, b.TrainerID, b.BookingDate,
		b.StartTime, b.EndTime, b.DeliveryFormatID, b.DeliveryFormatOptionID,
		b.Notes, b.Status, b.Price,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT id, service_id, client_id, trainer_id, booking_date,
			start_time, end_time, delivery_format_id, delivery_format_option_id,
			notes, status, price, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// UpdateStatus overwrites status, notes and updated_at unconditionally.
// There is deliberately no transition guard here; see the state machine
// notes on the service.
func (r *repository) UpdateStatus(ctx context.Context, id string, status BookingStatus, notes string) error {
	query := `
		UPDATE bookings
		SET status = $2, notes = COALESCE(NULLIF($3, ''), notes), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status, notes)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *repository) QueryByTrainerAndDateRange(ctx context.Context, trainerID string, from, to time.Time) ([]Booking, error) {
	query := `
		SELECT id, service_id, client_id, trainer_id, booking_date,
			start_time, end_time, delivery_format_id, delivery_format_option_id,
			notes, status, price, created_at, updated_at
		FROM bookings
		WHERE trainer_id = $1 AND booking_date >= $2 AND booking_date <= $3
		ORDER BY booking_date ASC
		LIMIT $4
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, trainerID, from, to, conflictLookupLimit)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	query := `
		SELECT id, service_id, client_id, trainer_id, booking_date,
			start_time, end_time, delivery_format_id, delivery_format_option_id,
			notes, status, price, created_at, updated_at
		FROM bookings
		WHERE trainer_id = $1 OR client_id = $1
		ORDER BY booking_date DESC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListClientIDsByTrainer(ctx context.Context, trainerID string) ([]string, error) {
	query := `
		SELECT DISTINCT client_id
		FROM bookings
		WHERE trainer_id = $1
	`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, trainerID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
