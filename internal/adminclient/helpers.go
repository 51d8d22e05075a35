package adminclient

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quizbuilder/internal/models"
)

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  list")
	fmt.Fprintln(out, "  refresh")
	fmt.Fprintln(out, "  show <quiz#>")
	fmt.Fprintln(out, "  new")
	fmt.Fprintln(out, "  edit <quiz#>")
	fmt.Fprintln(out, "  delete <quiz#>")
	fmt.Fprintln(out, "  addq")
	fmt.Fprintln(out, "  editq <question#>")
	fmt.Fprintln(out, "  deleteq <question#>")
	fmt.Fprintln(out, "  exit")
}

func printQuizList(out io.Writer, controller *Controller) {
	if len(controller.Quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes yet. Create one with: new")
		return
	}
	fmt.Fprintf(out, "%d quizzes:\n", len(controller.Quizzes))
	for i, item := range controller.Quizzes {
		marker := " "
		if item.ID.Hex() == controller.ExpandedQuizID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %2d. %s (%d questions, updated %s)\n",
			marker, i+1, item.Title, len(item.Questions), item.Updated_at.Format("2006-01-02 15:04"))
	}
}

func printQuizDetail(out io.Writer, item models.Quiz) {
	fmt.Fprintf(out, "\n%s\n", item.Title)
	if strings.TrimSpace(item.Description) != "" {
		fmt.Fprintln(out, item.Description)
	}
	if len(item.Questions) == 0 {
		fmt.Fprintln(out, "No questions yet. Add one with: addq")
		return
	}
	for i, question := range item.Questions {
		fmt.Fprintf(out, "%2d. [%s] %s\n", i+1, question.Type, question.Text)
		for _, option := range question.Options {
			marker := " "
			if option == question.CorrectAnswer {
				marker = "*"
			}
			fmt.Fprintf(out, "     %s %s\n", marker, option)
		}
		if question.Type != models.TypeMultipleChoice && question.CorrectAnswer != "" {
			fmt.Fprintf(out, "     answer: %s\n", question.CorrectAnswer)
		}
	}
}

func parseOrdinal(args []string, index, max int) (int, error) {
	if len(args) <= index {
		return 0, errors.New("missing number argument")
	}
	value, err := strconv.Atoi(args[index])
	if err != nil || value < 1 || value > max {
		return 0, fmt.Errorf("expected a number between 1 and %d", max)
	}
	return value, nil
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, bool) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// fillQuizForm prompts for the quiz fields and validates the draft before
// handing it back. Returns false if input ends or validation fails.
func fillQuizForm(reader *bufio.Reader, out io.Writer, draft QuizDraft) (QuizDraft, bool) {
	title, ok := promptLine(reader, out, fmt.Sprintf("Title [%s]: ", draft.Title))
	if !ok {
		return QuizDraft{}, false
	}
	if title != "" {
		draft.Title = title
	}

	description, ok := promptLine(reader, out, fmt.Sprintf("Description [%s]: ", draft.Description))
	if !ok {
		return QuizDraft{}, false
	}
	if description != "" {
		draft.Description = description
	}

	if err := draft.Validate(); err != nil {
		fmt.Fprintln(out, err.Error())
		return QuizDraft{}, false
	}
	return draft, true
}

// fillQuestionForm walks the question fields: text, type, then the
// type-specific answer section. Multiple-choice options are collected one at
// a time, mirroring the browser form.
func fillQuestionForm(reader *bufio.Reader, out io.Writer, draft QuestionDraft) (QuestionDraft, bool) {
	text, ok := promptLine(reader, out, fmt.Sprintf("Question text [%s]: ", draft.Text))
	if !ok {
		return QuestionDraft{}, false
	}
	if text != "" {
		draft.Text = text
	}

	questionType, ok := promptLine(reader, out, fmt.Sprintf("Type (multiple-choice/short-answer/true-false) [%s]: ", draft.Type))
	if !ok {
		return QuestionDraft{}, false
	}
	if questionType != "" {
		draft.Type = questionType
	}

	switch draft.Type {
	case models.TypeMultipleChoice:
		if !fillOptions(reader, out, &draft) {
			return QuestionDraft{}, false
		}
	case models.TypeTrueFalse:
		answer, ok := promptLine(reader, out, fmt.Sprintf("Correct answer (true/false) [%s]: ", draft.CorrectAnswer))
		if !ok {
			return QuestionDraft{}, false
		}
		if answer != "" {
			draft.CorrectAnswer = strings.ToLower(answer)
		}
	default:
		answer, ok := promptLine(reader, out, fmt.Sprintf("Correct answer [%s]: ", draft.CorrectAnswer))
		if !ok {
			return QuestionDraft{}, false
		}
		if answer != "" {
			draft.CorrectAnswer = answer
		}
	}

	if err := draft.Validate(); err != nil {
		fmt.Fprintln(out, err.Error())
		return QuestionDraft{}, false
	}
	return draft, true
}

func fillOptions(reader *bufio.Reader, out io.Writer, draft *QuestionDraft) bool {
	for i, option := range draft.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, option)
	}
	for {
		option, ok := promptLine(reader, out, "Add option (blank to finish, -N to remove option N): ")
		if !ok {
			return false
		}
		if option == "" {
			break
		}
		if strings.HasPrefix(option, "-") {
			number, err := strconv.Atoi(option[1:])
			if err != nil || !draft.RemoveOption(number-1) {
				fmt.Fprintln(out, "No such option")
			}
			continue
		}
		draft.AddOption(option)
	}

	answer, ok := promptLine(reader, out, fmt.Sprintf("Correct answer [%s]: ", draft.CorrectAnswer))
	if !ok {
		return false
	}
	if answer != "" {
		draft.CorrectAnswer = answer
	}
	return true
}
