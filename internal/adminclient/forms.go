package adminclient

import (
	"errors"
	"strings"

	"quizbuilder/internal/models"
)

// QuizDraft is the local, unsaved state of the quiz form. It never talks to
// the network; Validate and Payload prepare it for the caller.
type QuizDraft struct {
	Title       string
	Description string
}

func (d QuizDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("quiz title is required")
	}
	return nil
}

func (d QuizDraft) Payload() QuizPayload {
	return QuizPayload{
		Title:       d.Title,
		Description: d.Description,
	}
}

// QuestionDraft is the local state of the question form. Options accumulate
// one at a time; removing an option clears the correct answer if it pointed
// at the removed entry.
type QuestionDraft struct {
	Text          string
	Type          string
	Options       []string
	CorrectAnswer string
}

func NewQuestionDraft() QuestionDraft {
	return QuestionDraft{
		Type:    models.TypeMultipleChoice,
		Options: []string{},
	}
}

// QuestionDraftFrom seeds the form with an existing question for editing.
func QuestionDraftFrom(question models.Question) QuestionDraft {
	options := make([]string, len(question.Options))
	copy(options, question.Options)
	return QuestionDraft{
		Text:          question.Text,
		Type:          question.Type,
		Options:       options,
		CorrectAnswer: question.CorrectAnswer,
	}
}

func (d *QuestionDraft) AddOption(option string) bool {
	if strings.TrimSpace(option) == "" {
		return false
	}
	d.Options = append(d.Options, option)
	return true
}

func (d *QuestionDraft) RemoveOption(index int) bool {
	if index < 0 || index >= len(d.Options) {
		return false
	}
	removed := d.Options[index]
	d.Options = append(d.Options[:index], d.Options[index+1:]...)
	if d.CorrectAnswer == removed {
		d.CorrectAnswer = ""
	}
	return true
}

func (d QuestionDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return errors.New("question text is required")
	}
	if d.Type != models.TypeMultipleChoice {
		return nil
	}
	if len(d.Options) == 0 {
		return errors.New("multiple choice questions need at least one option")
	}
	if d.CorrectAnswer == "" {
		return errors.New("multiple choice questions need a correct answer")
	}
	for _, option := range d.Options {
		if option == d.CorrectAnswer {
			return nil
		}
	}
	return errors.New("correct answer must be one of the options")
}

// Payload drops options for non-multiple-choice questions, matching the
// submitted shape of the browser form.
func (d QuestionDraft) Payload() QuestionPayload {
	options := d.Options
	if d.Type != models.TypeMultipleChoice {
		options = []string{}
	}
	if options == nil {
		options = []string{}
	}
	return QuestionPayload{
		Text:          d.Text,
		Type:          d.Type,
		Options:       options,
		CorrectAnswer: d.CorrectAnswer,
	}
}
