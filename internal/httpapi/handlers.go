package httpapi

import (
	"net/http"

	"github.com/go-chi/chi"

	"quizbuilder/internal/quiz"
)

func (api *API) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := api.repo.ListQuizzes(r.Context())
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (api *API) GetQuiz(w http.ResponseWriter, r *http.Request) {
	item, err := api.repo.GetQuiz(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (api *API) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var payload createQuizRequest
	if !api.decodeAndValidate(w, r, &payload) {
		return
	}

	created, err := api.repo.CreateQuiz(r.Context(), payload.Title, payload.Description)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (api *API) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var payload updateQuizRequest
	if !api.decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := api.repo.UpdateQuiz(r.Context(), chi.URLParam(r, "id"), quiz.QuizPatch{
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *API) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if err := api.repo.DeleteQuiz(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Quiz deleted")
}

func (api *API) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var payload questionRequest
	if !api.decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := api.repo.AddQuestion(r.Context(), chi.URLParam(r, "id"), payload.toQuestionData())
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, updated)
}

func (api *API) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var payload questionRequest
	if !api.decodeAndValidate(w, r, &payload) {
		return
	}

	updated, err := api.repo.UpdateQuestion(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "questionID"),
		payload.toQuestionData(),
	)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (api *API) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	updated, err := api.repo.RemoveQuestion(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "questionID"),
	)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (payload questionRequest) toQuestionData() quiz.QuestionData {
	options := payload.Options
	if options == nil {
		options = []string{}
	}
	return quiz.QuestionData{
		Text:          payload.Text,
		Type:          payload.Type,
		Options:       options,
		CorrectAnswer: payload.CorrectAnswer,
	}
}
