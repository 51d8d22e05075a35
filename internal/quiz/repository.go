package quiz

import (
	"context"
	"errors"

	"quizbuilder/internal/models"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// ValidationError reports a missing or invalid required field. The API layer
// maps it to 400; everything that is not a ValidationError or a not-found
// sentinel maps to 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// QuizPatch carries a partial quiz update. A field is applied only when it is
// non-empty, so an omitted or empty title/description leaves the stored value
// untouched.
type QuizPatch struct {
	Title       string
	Description string
}

// QuestionData is the caller-supplied portion of a question. Consistency
// between Type, Options and CorrectAnswer is deliberately not checked here;
// the storage layer accepts whatever combination the client sends.
type QuestionData struct {
	Text          string
	Type          string
	Options       []string
	CorrectAnswer string
}

// Repository is the CRUD surface over the quiz collection. Every mutation
// returns the entire reloaded aggregate so callers can replace their local
// copy instead of patching it.
type Repository interface {
	ListQuizzes(ctx context.Context) ([]models.Quiz, error)
	GetQuiz(ctx context.Context, id string) (models.Quiz, error)
	CreateQuiz(ctx context.Context, title, description string) (models.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, patch QuizPatch) (models.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	AddQuestion(ctx context.Context, quizID string, data QuestionData) (models.Quiz, error)
	UpdateQuestion(ctx context.Context, quizID, questionID string, data QuestionData) (models.Quiz, error)
	RemoveQuestion(ctx context.Context, quizID, questionID string) (models.Quiz, error)
}
