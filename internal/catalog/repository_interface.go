package catalog

import "context"

type Repository interface {
	GetServiceByID(ctx context.Context, id string) (*Service, error)
	GetTitlesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]Service, error)
}
