package goals

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrGoalNotFound = errors.New("goal not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGoal(ctx context.Context, g *Goal) (*Goal, error) {
	id := g.ID
	if id == "" {
		id = uuid.New().String()
	}

	created := &Goal{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO goals (id, client_id, title, target_date, status)
		VALUES ($1, $2, $3, $4, 'active')
		RETURNING id, client_id, title, target_date, status, created_at, updated_at
	`, id, g.ClientID, g.Title, g.TargetDate).StructScan(created)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) ListByClient(ctx context.Context, clientID string) ([]Goal, error) {
	var list []Goal
	err := r.db.SelectContext(ctx, &list, `
		SELECT id, client_id, title, target_date, status, created_at, updated_at
		FROM goals
		WHERE client_id = $1
		ORDER BY created_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status GoalStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE goals
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
