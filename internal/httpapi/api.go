package httpapi

import (
	"github.com/go-playground/validator"

	"quizbuilder/internal/quiz"
)

type API struct {
	repo     quiz.Repository
	validate *validator.Validate
}

func NewAPI(repo quiz.Repository) *API {
	return &API{
		repo:     repo,
		validate: validator.New(),
	}
}
