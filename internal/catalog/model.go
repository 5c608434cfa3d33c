package catalog

import "time"

type Service struct {
	ID          string    `db:"id" json:"id"`
	TrainerID   string    `db:"trainer_id" json:"trainerId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
