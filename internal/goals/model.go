package goals

import "time"

type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusAchieved  GoalStatus = "achieved"
	StatusAbandoned GoalStatus = "abandoned"
)

// Goal is a client-set fitness target tracked between sessions.
type Goal struct {
	ID         string     `db:"id" json:"id"`
	ClientID   string     `db:"client_id" json:"clientId"`
	Title      string     `db:"title" json:"title"`
	TargetDate *time.Time `db:"target_date" json:"targetDate,omitempty"`
	Status     GoalStatus `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updatedAt"`
}

func (s GoalStatus) Valid() bool {
	switch s {
	case StatusActive, StatusAchieved, StatusAbandoned:
		return true
	}
	return false
}

type CreateGoalRequest struct {
	Title      string     `json:"title" binding:"required"`
	TargetDate *time.Time `json:"targetDate"`
}

type UpdateGoalStatusRequest struct {
	Status GoalStatus `json:"status" binding:"required"`
}
