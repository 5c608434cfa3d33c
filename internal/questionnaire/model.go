package questionnaire

import (
	"time"

	"github.com/lib/pq"
)

// Question is one onboarding questionnaire entry. Questions are ordered by
// the Order field within a category and logically deleted via IsActive.
type Question struct {
	ID        string         `db:"id" json:"id"`
	Text      string         `db:"text" json:"text"`
	Category  string         `db:"category" json:"category"`
	Order     int            `db:"display_order" json:"order"`
	Options   pq.StringArray `db:"options" json:"options"`
	IsActive  bool           `db:"is_active" json:"isActive"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// Answer records a user's response to a question.
type Answer struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	QuestionID string    `db:"question_id" json:"questionId"`
	Response   string    `db:"response" json:"response"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type CreateQuestionRequest struct {
	Text     string   `json:"text" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Order    int      `json:"order"`
	Options  []string `json:"options"`
}

type UpdateQuestionRequest struct {
	Text     string   `json:"text" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Order    int      `json:"order"`
	Options  []string `json:"options"`
	IsActive *bool    `json:"isActive" binding:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Response   string `json:"response" binding:"required"`
}
