package questionnaire

import "context"

type Repository interface {
	CreateQuestion(ctx context.Context, q *Question) (*Question, error)
	GetQuestions(ctx context.Context) ([]Question, error)
	GetQuestionByID(ctx context.Context, id string) (*Question, error)
	UpdateQuestion(ctx context.Context, q *Question) error
	DeleteQuestion(ctx context.Context, id string) error
	SubmitAnswer(ctx context.Context, a *Answer) (*Answer, error)
	GetAnswers(ctx context.Context, userID string) ([]Answer, error)
}
