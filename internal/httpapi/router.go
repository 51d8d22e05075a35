package httpapi

import (
	"net/http"

	"github.com/go-chi/chi"

	"quizbuilder/internal/quiz"
)

// NewRouter builds the full route tree, including the root health route and
// the JSON fallbacks for unmatched routes and methods. Request middleware
// (logging, recovery, CORS) is applied by the caller.
func NewRouter(repo quiz.Repository) *chi.Mux {
	api := NewAPI(repo)

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "Quiz API Server is running")
	})

	r.Route("/api/quizzes", func(r chi.Router) {
		r.Get("/", api.ListQuizzes)
		r.Post("/", api.CreateQuiz)
		r.Get("/{id}", api.GetQuiz)
		r.Put("/{id}", api.UpdateQuiz)
		r.Delete("/{id}", api.DeleteQuiz)

		r.Post("/{id}/questions", api.AddQuestion)
		r.Put("/{id}/questions/{questionID}", api.UpdateQuestion)
		r.Delete("/{id}/questions/{questionID}", api.RemoveQuestion)
	})

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, "Route not found")
}
