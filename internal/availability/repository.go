package availability

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// UpsertWeeklyAvailability replaces the template for (trainer, day) or
// creates it. The unique index on (trainer_id, day_of_week) makes the whole
// record the unit of replacement.
func (r *repository) UpsertWeeklyAvailability(ctx context.Context, w *WeeklyAvailability) error {
	query := `
		INSERT INTO trainer_availability (id, trainer_id, day_of_week, start_time, end_time, is_available, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (trainer_id, day_of_week)
		DO UPDATE SET start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
	`

	id := w.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx, query, id, w.TrainerID, w.DayOfWeek, w.StartTime, w.EndTime, w.IsAvailable)
	return err
}

func (r *repository) GetWeeklyAvailability(ctx context.Context, trainerID string) ([]WeeklyAvailability, error) {
	query := `
		SELECT id, trainer_id, day_of_week, start_time, end_time, is_available, updated_at
		FROM trainer_availability
		WHERE trainer_id = $1
		ORDER BY day_of_week ASC
	`

	var weekly []WeeklyAvailability
	err := r.db.SelectContext(ctx, &weekly, query, trainerID)
	if err != nil {
		return nil, err
	}

	return weekly, nil
}

// InsertBlockedTime always creates a new record. Overlapping or duplicate
// blocks are allowed; the resolution engine tolerates them.
func (r *repository) InsertBlockedTime(ctx context.Context, b *BlockedTime) (string, error) {
	query := `
		INSERT INTO blocked_times (id, trainer_id, date, start_time, end_time, reason, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW())
	`

	id := b.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx, query, id, b.TrainerID, b.Date, b.StartTime, b.EndTime, b.Reason)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *repository) GetActiveBlockedTimes(ctx context.Context, trainerID string) ([]BlockedTime, error) {
	query := `
		SELECT id, trainer_id, date, start_time, end_time, reason, is_active, created_at
		FROM blocked_times
		WHERE trainer_id = $1 AND is_active = TRUE
		ORDER BY date ASC
	`

	var blocked []BlockedTime
	err := r.db.SelectContext(ctx, &blocked, query, trainerID)
	if err != nil {
		return nil, err
	}

	return blocked, nil
}

// DeactivateBlockedTime is a logical delete. Deactivating an unknown or
// already inactive block is a no-op, not an error.
func (r *repository) DeactivateBlockedTime(ctx context.Context, id string) error {
	query := `
		UPDATE blocked_times
		SET is_active = FALSE
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
