package adminclient

import (
	"context"

	"quizbuilder/internal/models"
)

// Controller is the client-side view model: the fetched quiz list, which quiz
// is expanded, which quiz/question is being edited, and the form visibility
// flags. Every mutation issues the API call and, on success, reconciles local
// state from the server's response; on failure it sets a single error banner
// and leaves prior state intact. No optimistic updates are applied, so there
// is nothing to roll back.
type Controller struct {
	client *HTTPClient

	Quizzes           []models.Quiz
	ExpandedQuizID    string
	EditingQuizID     string
	EditingQuestionID string
	ShowQuizForm      bool
	ShowQuestionForm  bool
	ErrorBanner       string
}

func NewController(client *HTTPClient) *Controller {
	return &Controller{client: client}
}

// Refresh fetches the full quiz list, replacing the local copy.
func (c *Controller) Refresh(ctx context.Context) error {
	c.ErrorBanner = ""
	quizzes, err := c.client.ListQuizzes(ctx)
	if err != nil {
		c.ErrorBanner = "Failed to fetch quizzes"
		return err
	}
	c.Quizzes = quizzes
	return nil
}

// ExpandedQuiz resolves the expanded pointer against the current list, so it
// always reflects the most recently reconciled copy of the aggregate.
func (c *Controller) ExpandedQuiz() (models.Quiz, bool) {
	if c.ExpandedQuizID == "" {
		return models.Quiz{}, false
	}
	for _, item := range c.Quizzes {
		if item.ID.Hex() == c.ExpandedQuizID {
			return item, true
		}
	}
	return models.Quiz{}, false
}

// ToggleExpand expands the quiz, or collapses it when it is already expanded.
// Any in-progress question form is abandoned either way.
func (c *Controller) ToggleExpand(quizID string) {
	if c.ExpandedQuizID == quizID {
		c.ExpandedQuizID = ""
	} else {
		c.ExpandedQuizID = quizID
	}
	c.ShowQuestionForm = false
	c.EditingQuestionID = ""
}

func (c *Controller) OpenQuizForm() {
	c.ShowQuizForm = true
	c.EditingQuizID = ""
}

func (c *Controller) OpenQuizFormForEdit(quizID string) {
	c.ShowQuizForm = true
	c.EditingQuizID = quizID
}

func (c *Controller) OpenQuestionForm() {
	c.ShowQuestionForm = true
	c.EditingQuestionID = ""
}

func (c *Controller) OpenQuestionFormForEdit(questionID string) {
	c.ShowQuestionForm = true
	c.EditingQuestionID = questionID
}

func (c *Controller) DismissError() {
	c.ErrorBanner = ""
}

// SaveQuiz creates a new quiz or updates the one being edited, then replaces
// the affected list element with the server's copy.
func (c *Controller) SaveQuiz(ctx context.Context, draft QuizDraft) error {
	c.ErrorBanner = ""

	if c.EditingQuizID != "" {
		updated, err := c.client.UpdateQuiz(ctx, c.EditingQuizID, draft.Payload())
		if err != nil {
			c.ErrorBanner = "Failed to save quiz"
			return err
		}
		c.replaceQuiz(updated)
		c.EditingQuizID = ""
	} else {
		created, err := c.client.CreateQuiz(ctx, draft.Payload())
		if err != nil {
			c.ErrorBanner = "Failed to save quiz"
			return err
		}
		c.Quizzes = append(c.Quizzes, created)
	}

	c.ShowQuizForm = false
	return nil
}

// DeleteQuiz removes the quiz locally once the server confirms, collapsing it
// if it was expanded.
func (c *Controller) DeleteQuiz(ctx context.Context, quizID string) error {
	c.ErrorBanner = ""

	if err := c.client.DeleteQuiz(ctx, quizID); err != nil {
		c.ErrorBanner = "Failed to delete quiz"
		return err
	}

	remaining := make([]models.Quiz, 0, len(c.Quizzes))
	for _, item := range c.Quizzes {
		if item.ID.Hex() != quizID {
			remaining = append(remaining, item)
		}
	}
	c.Quizzes = remaining

	if c.ExpandedQuizID == quizID {
		c.ExpandedQuizID = ""
	}
	return nil
}

// SaveQuestion adds a question to the expanded quiz, or overwrites the one
// being edited. The server returns the full updated aggregate, which replaces
// the local copy wholesale.
func (c *Controller) SaveQuestion(ctx context.Context, draft QuestionDraft) error {
	c.ErrorBanner = ""

	var (
		updated models.Quiz
		err     error
	)
	if c.EditingQuestionID != "" {
		updated, err = c.client.UpdateQuestion(ctx, c.ExpandedQuizID, c.EditingQuestionID, draft.Payload())
	} else {
		updated, err = c.client.AddQuestion(ctx, c.ExpandedQuizID, draft.Payload())
	}
	if err != nil {
		c.ErrorBanner = "Failed to save question"
		return err
	}

	c.replaceQuiz(updated)
	c.ExpandedQuizID = updated.ID.Hex()
	c.EditingQuestionID = ""
	c.ShowQuestionForm = false
	return nil
}

// DeleteQuestion removes a question from the expanded quiz.
func (c *Controller) DeleteQuestion(ctx context.Context, questionID string) error {
	c.ErrorBanner = ""

	updated, err := c.client.RemoveQuestion(ctx, c.ExpandedQuizID, questionID)
	if err != nil {
		c.ErrorBanner = "Failed to delete question"
		return err
	}

	c.replaceQuiz(updated)
	c.ExpandedQuizID = updated.ID.Hex()
	return nil
}

func (c *Controller) replaceQuiz(updated models.Quiz) {
	for i, item := range c.Quizzes {
		if item.ID == updated.ID {
			c.Quizzes[i] = updated
			return
		}
	}
	c.Quizzes = append(c.Quizzes, updated)
}
