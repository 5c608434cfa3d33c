package profile

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

// GetProfile returns nil (not an error) when the profile does not exist;
// the directory is only consulted for display names.
func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT user_id, first_name, last_name, user_type, email, created_at
		FROM profiles
		WHERE user_id = $1
	`

	var p Profile
	err := r.db.GetContext(ctx, &p, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetProfilesByIDs resolves a deduplicated id set in one round trip. IDs with
// no profile are simply absent from the result map.
func (r *repository) GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]*Profile, error) {
	result := make(map[string]*Profile, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT user_id, first_name, last_name, user_type, email, created_at
		FROM profiles
		WHERE user_id IN (?)
	`, userIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var profiles []Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, err
	}

	for i := range profiles {
		result[profiles[i].UserID] = &profiles[i]
	}

	return result, nil
}
