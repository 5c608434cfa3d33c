package catalog

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetServiceByID(ctx context.Context, id string) (*Service, error) {
	query := `
		SELECT id, trainer_id, title, description, price, is_active, created_at
		FROM services
		WHERE id = $1
	`

	var s Service
	err := r.db.GetContext(ctx, &s, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetTitlesByIDs resolves service titles for booking display in one batched
// query. Missing ids are absent from the map; callers fall back to
// "Unknown Service".
func (r *repository) GetTitlesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	query, args, err := sqlx.In(`SELECT id, title FROM services WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	rows := []struct {
		ID    string `db:"id"`
		Title string `db:"title"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		titles[row.ID] = row.Title
	}

	return titles, nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID string) ([]Service, error) {
	query := `
		SELECT id, trainer_id, title, description, price, is_active, created_at
		FROM services
		WHERE trainer_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`

	var services []Service
	if err := r.db.SelectContext(ctx, &services, query, trainerID); err != nil {
		return nil, err
	}

	return services, nil
}
