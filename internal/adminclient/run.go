package adminclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizbuilder/internal/models"
)

const (
	defaultServer      = "http://127.0.0.1:5000"
	defaultHTTPTimeout = 5 * time.Second
)

type Config struct {
	ServerURL   string
	HTTPTimeout time.Duration
}

// Run drives the interactive admin session: one fetch of the quiz list up
// front, then a command loop that issues API calls through the controller.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout})
	controller := NewController(client)
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "quizbuilder admin\nserver=%s\n\n", serverURL)

	if err := controller.Refresh(ctx); err != nil {
		if errors.Is(err, ErrServiceUnavailable) {
			return fmt.Errorf("quiz service unavailable at %s", serverURL)
		}
		fmt.Fprintln(out, "! "+controller.ErrorBanner)
	}
	printQuizList(out, controller)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp(out)
		case "exit", "quit":
			return nil
		case "list":
			printQuizList(out, controller)
		case "refresh":
			controller.Refresh(ctx)
			printQuizList(out, controller)
		case "show":
			runShow(out, controller, args)
		case "new":
			runNewQuiz(ctx, reader, out, controller)
		case "edit":
			runEditQuiz(ctx, reader, out, controller, args)
		case "delete":
			runDeleteQuiz(ctx, reader, out, controller, args)
		case "addq":
			runAddQuestion(ctx, reader, out, controller)
		case "editq":
			runEditQuestion(ctx, reader, out, controller, args)
		case "deleteq":
			runDeleteQuestion(ctx, reader, out, controller, args)
		default:
			fmt.Fprintf(out, "Unknown command %q. Type help for commands.\n", command)
		}

		if controller.ErrorBanner != "" {
			fmt.Fprintln(out, "! "+controller.ErrorBanner)
			controller.DismissError()
		}
	}
}

func runShow(out io.Writer, controller *Controller, args []string) {
	item, ok := selectQuiz(out, controller, args, 1)
	if !ok {
		return
	}
	controller.ToggleExpand(item.ID.Hex())
	if expanded, ok := controller.ExpandedQuiz(); ok {
		printQuizDetail(out, expanded)
	} else {
		fmt.Fprintf(out, "Collapsed %q\n", item.Title)
	}
}

func runNewQuiz(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller) {
	controller.OpenQuizForm()
	draft, ok := fillQuizForm(reader, out, QuizDraft{})
	if !ok {
		controller.ShowQuizForm = false
		return
	}
	if controller.SaveQuiz(ctx, draft) == nil {
		fmt.Fprintf(out, "Created quiz %q\n", draft.Title)
	}
}

func runEditQuiz(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller, args []string) {
	item, ok := selectQuiz(out, controller, args, 1)
	if !ok {
		return
	}
	controller.OpenQuizFormForEdit(item.ID.Hex())
	draft, ok := fillQuizForm(reader, out, QuizDraft{Title: item.Title, Description: item.Description})
	if !ok {
		controller.ShowQuizForm = false
		controller.EditingQuizID = ""
		return
	}
	if controller.SaveQuiz(ctx, draft) == nil {
		fmt.Fprintf(out, "Updated quiz %q\n", draft.Title)
	}
}

func runDeleteQuiz(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller, args []string) {
	item, ok := selectQuiz(out, controller, args, 1)
	if !ok {
		return
	}
	confirmed, err := promptYesNo(reader, out, fmt.Sprintf("Delete quiz %q and all its questions? (y/n) ", item.Title))
	if err != nil || !confirmed {
		return
	}
	if controller.DeleteQuiz(ctx, item.ID.Hex()) == nil {
		fmt.Fprintf(out, "Deleted quiz %q\n", item.Title)
	}
}

func runAddQuestion(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller) {
	if _, ok := controller.ExpandedQuiz(); !ok {
		fmt.Fprintln(out, "Expand a quiz first with: show <quiz#>")
		return
	}
	controller.OpenQuestionForm()
	draft, ok := fillQuestionForm(reader, out, NewQuestionDraft())
	if !ok {
		controller.ShowQuestionForm = false
		return
	}
	if controller.SaveQuestion(ctx, draft) == nil {
		fmt.Fprintln(out, "Question added")
		if expanded, ok := controller.ExpandedQuiz(); ok {
			printQuizDetail(out, expanded)
		}
	}
}

func runEditQuestion(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller, args []string) {
	question, ok := selectQuestion(out, controller, args, 1)
	if !ok {
		return
	}
	controller.OpenQuestionFormForEdit(question.ID.Hex())
	draft, ok := fillQuestionForm(reader, out, QuestionDraftFrom(question))
	if !ok {
		controller.ShowQuestionForm = false
		controller.EditingQuestionID = ""
		return
	}
	if controller.SaveQuestion(ctx, draft) == nil {
		fmt.Fprintln(out, "Question updated")
	}
}

func runDeleteQuestion(ctx context.Context, reader *bufio.Reader, out io.Writer, controller *Controller, args []string) {
	question, ok := selectQuestion(out, controller, args, 1)
	if !ok {
		return
	}
	confirmed, err := promptYesNo(reader, out, "Delete this question? (y/n) ")
	if err != nil || !confirmed {
		return
	}
	if controller.DeleteQuestion(ctx, question.ID.Hex()) == nil {
		fmt.Fprintln(out, "Question deleted")
	}
}

func selectQuiz(out io.Writer, controller *Controller, args []string, index int) (models.Quiz, bool) {
	number, err := parseOrdinal(args, index, len(controller.Quizzes))
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return models.Quiz{}, false
	}
	return controller.Quizzes[number-1], true
}

func selectQuestion(out io.Writer, controller *Controller, args []string, index int) (models.Question, bool) {
	expanded, ok := controller.ExpandedQuiz()
	if !ok {
		fmt.Fprintln(out, "Expand a quiz first with: show <quiz#>")
		return models.Question{}, false
	}
	number, err := parseOrdinal(args, index, len(expanded.Questions))
	if err != nil {
		fmt.Fprintln(out, err.Error())
		return models.Question{}, false
	}
	return expanded.Questions[number-1], true
}
