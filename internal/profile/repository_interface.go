package profile

import "context"

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]*Profile, error)
}
