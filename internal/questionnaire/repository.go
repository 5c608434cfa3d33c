package questionnaire

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrQuestionNotFound = errors.New("question not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateQuestion(ctx context.Context, q *Question) (*Question, error) {
	id := q.ID
	if id == "" {
		id = uuid.New().String()
	}

	created := &Question{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO questions (id, text, category, display_order, options, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, text, category, display_order, options, is_active, created_at
	`, id, q.Text, q.Category, q.Order, q.Options).StructScan(created)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) GetQuestions(ctx context.Context) ([]Question, error) {
	var questions []Question
	err := r.db.SelectContext(ctx, &questions, `
		SELECT id, text, category, display_order, options, is_active, created_at
		FROM questions
		WHERE is_active = TRUE
		ORDER BY category ASC, display_order ASC
	`)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) GetQuestionByID(ctx context.Context, id string) (*Question, error) {
	q := &Question{}
	err := r.db.GetContext(ctx, q, `
		SELECT id, text, category, display_order, options, is_active, created_at
		FROM questions
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *repository) UpdateQuestion(ctx context.Context, q *Question) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE questions
		SET text = $2, category = $3, display_order = $4, options = $5, is_active = $6
		WHERE id = $1
	`, q.ID, q.Text, q.Category, q.Order, q.Options, q.IsActive)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion is a logical delete; answers referencing the question stay
// valid.
func (r *repository) DeleteQuestion(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE questions
		SET is_active = FALSE
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *repository) SubmitAnswer(ctx context.Context, a *Answer) (*Answer, error) {
	id := a.ID
	if id == "" {
		id = uuid.New().String()
	}

	created := &Answer{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO answers (id, user_id, question_id, response)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, question_id)
		DO UPDATE SET response = EXCLUDED.response, created_at = NOW()
		RETURNING id, user_id, question_id, response, created_at
	`, id, a.UserID, a.QuestionID, a.Response).StructScan(created)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) GetAnswers(ctx context.Context, userID string) ([]Answer, error) {
	var answers []Answer
	err := r.db.SelectContext(ctx, &answers, `
		SELECT id, user_id, question_id, response, created_at
		FROM answers
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	return answers, nil
}
