package goals

import "context"

type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) (*Goal, error)
	ListByClient(ctx context.Context, clientID string) ([]Goal, error)
	UpdateStatus(ctx context.Context, id string, status GoalStatus) error
}
