package quiz

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"quizbuilder/internal/models"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewQuizRequiresTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		_, err := NewQuiz(title, "desc", baseTime)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("NewQuiz(%q) error = %v, want ValidationError", title, err)
		}
	}
}

func TestNewQuizStartsEmpty(t *testing.T) {
	created, err := NewQuiz("GK", "", baseTime)
	if err != nil {
		t.Fatalf("NewQuiz: %v", err)
	}
	if created.Questions == nil || len(created.Questions) != 0 {
		t.Fatalf("questions = %v, want empty non-nil slice", created.Questions)
	}
	if !created.Created_at.Equal(baseTime) || !created.Updated_at.Equal(baseTime) {
		t.Fatalf("timestamps = %v/%v, want both %v", created.Created_at, created.Updated_at, baseTime)
	}
	if created.ID.IsZero() {
		t.Fatal("expected a store-assigned id")
	}
}

func TestApplyQuizPatchPartialUpdate(t *testing.T) {
	item, _ := NewQuiz("GK", "original description", baseTime)

	ApplyQuizPatch(&item, QuizPatch{Title: "General Knowledge"}, baseTime.Add(time.Minute))

	if item.Title != "General Knowledge" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Description != "original description" {
		t.Fatalf("description = %q, want untouched original", item.Description)
	}
	if !item.Created_at.Equal(baseTime) {
		t.Fatalf("createdAt changed to %v", item.Created_at)
	}
	if !item.Updated_at.After(baseTime) {
		t.Fatalf("updatedAt = %v, want after %v", item.Updated_at, baseTime)
	}
}

func TestApplyQuizPatchEmptyPatchStillTouches(t *testing.T) {
	item, _ := NewQuiz("GK", "desc", baseTime)
	before := item.Updated_at

	ApplyQuizPatch(&item, QuizPatch{}, baseTime)

	if item.Title != "GK" || item.Description != "desc" {
		t.Fatalf("fields changed: %q/%q", item.Title, item.Description)
	}
	if !item.Updated_at.After(before) {
		t.Fatalf("updatedAt = %v, want strictly after %v", item.Updated_at, before)
	}
}

func TestNewQuestionDefaultsAndValidation(t *testing.T) {
	question, err := NewQuestion(QuestionData{Text: "Capital of France?"}, baseTime)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	if question.Type != models.TypeMultipleChoice {
		t.Fatalf("type = %q, want default %q", question.Type, models.TypeMultipleChoice)
	}
	if question.Options == nil {
		t.Fatal("options should default to an empty slice")
	}

	if _, err := NewQuestion(QuestionData{Text: "  "}, baseTime); err == nil {
		t.Fatal("expected validation error for blank text")
	}
	if _, err := NewQuestion(QuestionData{Text: "q", Type: "essay"}, baseTime); err == nil {
		t.Fatal("expected validation error for unknown type")
	}
}

func TestNewQuestionAcceptsInconsistentAnswer(t *testing.T) {
	// Options membership of correctAnswer is a presentation-layer rule; the
	// storage side takes whatever it is given.
	_, err := NewQuestion(QuestionData{
		Text:          "Capital of France?",
		Type:          models.TypeMultipleChoice,
		Options:       []string{"Paris", "Berlin"},
		CorrectAnswer: "Madrid",
	}, baseTime)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
}

func TestAppendQuestionAddsAtEndWithFreshID(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)

	seen := map[primitive.ObjectID]bool{}
	texts := []string{"first", "second", "third"}
	for i, text := range texts {
		question, err := AppendQuestion(&item, QuestionData{Text: text}, baseTime.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("AppendQuestion(%q): %v", text, err)
		}
		if seen[question.ID] {
			t.Fatalf("duplicate question id %s", question.ID.Hex())
		}
		seen[question.ID] = true
	}

	if len(item.Questions) != 3 {
		t.Fatalf("question count = %d", len(item.Questions))
	}
	for i, text := range texts {
		if item.Questions[i].Text != text {
			t.Fatalf("questions[%d].Text = %q, want %q", i, item.Questions[i].Text, text)
		}
	}
}

func TestReplaceQuestionPreservesIDAndPosition(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)
	for _, text := range []string{"a", "b", "c"} {
		if _, err := AppendQuestion(&item, QuestionData{Text: text}, baseTime); err != nil {
			t.Fatal(err)
		}
	}
	target := item.Questions[1]

	err := ReplaceQuestion(&item, target.ID, QuestionData{
		Text:          "b updated",
		Type:          models.TypeTrueFalse,
		CorrectAnswer: "true",
	}, baseTime.Add(time.Hour))
	if err != nil {
		t.Fatalf("ReplaceQuestion: %v", err)
	}

	updated := item.Questions[1]
	if updated.ID != target.ID {
		t.Fatalf("id changed: %s -> %s", target.ID.Hex(), updated.ID.Hex())
	}
	if !updated.Created_at.Equal(target.Created_at) {
		t.Fatalf("createdAt changed: %v -> %v", target.Created_at, updated.Created_at)
	}
	if updated.Text != "b updated" || updated.Type != models.TypeTrueFalse || updated.CorrectAnswer != "true" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	if item.Questions[0].Text != "a" || item.Questions[2].Text != "c" {
		t.Fatal("sibling questions disturbed")
	}
}

func TestReplaceQuestionUnknownID(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)
	err := ReplaceQuestion(&item, primitive.NewObjectID(), QuestionData{Text: "x"}, baseTime)
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestRemoveQuestionShiftsSiblings(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)
	for _, text := range []string{"a", "b", "c"} {
		if _, err := AppendQuestion(&item, QuestionData{Text: text}, baseTime); err != nil {
			t.Fatal(err)
		}
	}
	removed := item.Questions[1]

	if err := RemoveQuestion(&item, removed.ID, baseTime.Add(time.Hour)); err != nil {
		t.Fatalf("RemoveQuestion: %v", err)
	}

	if len(item.Questions) != 2 {
		t.Fatalf("question count = %d", len(item.Questions))
	}
	if item.Questions[0].Text != "a" || item.Questions[1].Text != "c" {
		t.Fatalf("relative order broken: %q, %q", item.Questions[0].Text, item.Questions[1].Text)
	}
	for _, question := range item.Questions {
		if question.ID == removed.ID {
			t.Fatal("removed question still present")
		}
	}

	if err := RemoveQuestion(&item, removed.ID, baseTime); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("second removal err = %v, want ErrQuestionNotFound", err)
	}
}

func TestTouchStrictlyIncreasesUpdatedAt(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)

	// Same-instant mutations must still move updatedAt forward.
	for i := 0; i < 5; i++ {
		before := item.Updated_at
		Touch(&item, baseTime)
		if !item.Updated_at.After(before) {
			t.Fatalf("iteration %d: updatedAt %v not after %v", i, item.Updated_at, before)
		}
	}
}

func TestMutationsStrictlyIncreaseUpdatedAt(t *testing.T) {
	item, _ := NewQuiz("GK", "", baseTime)

	before := item.Updated_at
	question, err := AppendQuestion(&item, QuestionData{Text: "q"}, baseTime)
	if err != nil {
		t.Fatal(err)
	}
	if !item.Updated_at.After(before) {
		t.Fatal("append did not advance updatedAt")
	}

	before = item.Updated_at
	if err := ReplaceQuestion(&item, question.ID, QuestionData{Text: "q2"}, baseTime); err != nil {
		t.Fatal(err)
	}
	if !item.Updated_at.After(before) {
		t.Fatal("replace did not advance updatedAt")
	}

	before = item.Updated_at
	if err := RemoveQuestion(&item, question.ID, baseTime); err != nil {
		t.Fatal(err)
	}
	if !item.Updated_at.After(before) {
		t.Fatal("remove did not advance updatedAt")
	}
}
