package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"quizbuilder/internal/quiz"
)

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, messageResponse{Message: message})
}

// writeRepositoryError is the total mapping from repository errors to HTTP
// statuses: validation to 400, the not-found sentinels to 404, everything
// else to a generic 500.
func writeRepositoryError(w http.ResponseWriter, err error) {
	var validationErr *quiz.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeMessage(w, http.StatusNotFound, "Quiz not found")
	case errors.Is(err, quiz.ErrQuestionNotFound):
		writeMessage(w, http.StatusNotFound, "Question not found")
	default:
		log.Printf("Error: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (api *API) decodeAndValidate(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Failed to parse JSON data")
		return false
	}
	if err := api.validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Fields not valid: "+err.Error())
		return false
	}
	return true
}
