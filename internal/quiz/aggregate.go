package quiz

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quizbuilder/internal/models"
)

// NewQuiz builds a fresh aggregate with an empty question list and
// createdAt == updatedAt.
func NewQuiz(title, description string, now time.Time) (models.Quiz, error) {
	if strings.TrimSpace(title) == "" {
		return models.Quiz{}, NewValidationError("title is required")
	}
	return models.Quiz{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Questions:   []models.Question{},
		Created_at:  now,
		Updated_at:  now,
	}, nil
}

// ApplyQuizPatch copies the non-empty patch fields onto the quiz and always
// refreshes updatedAt, even when the patch changes nothing.
func ApplyQuizPatch(quiz *models.Quiz, patch QuizPatch, now time.Time) {
	if patch.Title != "" {
		quiz.Title = patch.Title
	}
	if patch.Description != "" {
		quiz.Description = patch.Description
	}
	Touch(quiz, now)
}

// NewQuestion validates the caller-supplied fields and assigns a fresh id.
// Options/correctAnswer consistency is not enforced.
func NewQuestion(data QuestionData, now time.Time) (models.Question, error) {
	if strings.TrimSpace(data.Text) == "" {
		return models.Question{}, NewValidationError("question text is required")
	}

	questionType := data.Type
	if questionType == "" {
		questionType = models.TypeMultipleChoice
	}
	switch questionType {
	case models.TypeMultipleChoice, models.TypeShortAnswer, models.TypeTrueFalse:
	default:
		return models.Question{}, NewValidationError("invalid question type: " + questionType)
	}

	options := data.Options
	if options == nil {
		options = []string{}
	}

	return models.Question{
		ID:            primitive.NewObjectID(),
		Text:          data.Text,
		Type:          questionType,
		Options:       options,
		CorrectAnswer: data.CorrectAnswer,
		Created_at:    now,
	}, nil
}

// AppendQuestion adds a new question at the end of the sequence and refreshes
// the parent's updatedAt.
func AppendQuestion(quiz *models.Quiz, data QuestionData, now time.Time) (models.Question, error) {
	question, err := NewQuestion(data, now)
	if err != nil {
		return models.Question{}, err
	}
	quiz.Questions = append(quiz.Questions, question)
	Touch(quiz, now)
	return question, nil
}

// ReplaceQuestion overwrites text, type, options and correctAnswer on the
// matched question, preserving its id, createdAt and position.
func ReplaceQuestion(quiz *models.Quiz, questionID primitive.ObjectID, data QuestionData, now time.Time) error {
	idx := questionIndex(quiz, questionID)
	if idx < 0 {
		return ErrQuestionNotFound
	}

	updated, err := NewQuestion(data, now)
	if err != nil {
		return err
	}
	updated.ID = quiz.Questions[idx].ID
	updated.Created_at = quiz.Questions[idx].Created_at

	quiz.Questions[idx] = updated
	Touch(quiz, now)
	return nil
}

// RemoveQuestion drops the matched question; siblings shift down with no gaps.
func RemoveQuestion(quiz *models.Quiz, questionID primitive.ObjectID, now time.Time) error {
	idx := questionIndex(quiz, questionID)
	if idx < 0 {
		return ErrQuestionNotFound
	}
	quiz.Questions = append(quiz.Questions[:idx], quiz.Questions[idx+1:]...)
	Touch(quiz, now)
	return nil
}

// Touch sets updatedAt to now, nudging it forward when the clock has not
// advanced since the previous mutation so updatedAt strictly increases.
func Touch(quiz *models.Quiz, now time.Time) {
	if !now.After(quiz.Updated_at) {
		now = quiz.Updated_at.Add(time.Millisecond)
	}
	quiz.Updated_at = now
}

func questionIndex(quiz *models.Quiz, questionID primitive.ObjectID) int {
	for i, question := range quiz.Questions {
		if question.ID == questionID {
			return i
		}
	}
	return -1
}
