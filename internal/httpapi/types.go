package httpapi

type createQuizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type updateQuizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type questionRequest struct {
	Text          string   `json:"text" validate:"required"`
	Type          string   `json:"type" validate:"omitempty,oneof=multiple-choice short-answer true-false"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type messageResponse struct {
	Message string `json:"message"`
}
