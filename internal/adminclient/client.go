package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"quizbuilder/internal/models"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

// APIError carries the status and {message} body of a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type QuizPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type QuestionPayload struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	var payload []models.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *HTTPClient) GetQuiz(ctx context.Context, quizID string) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodGet, quizPath(quizID), nil, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) CreateQuiz(ctx context.Context, request QuizPayload) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodPost, "/api/quizzes", request, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) UpdateQuiz(ctx context.Context, quizID string, request QuizPayload) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodPut, quizPath(quizID), request, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) DeleteQuiz(ctx context.Context, quizID string) error {
	return c.doJSON(ctx, http.MethodDelete, quizPath(quizID), nil, nil)
}

func (c *HTTPClient) AddQuestion(ctx context.Context, quizID string, request QuestionPayload) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodPost, quizPath(quizID)+"/questions", request, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) UpdateQuestion(ctx context.Context, quizID, questionID string, request QuestionPayload) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodPut, questionPath(quizID, questionID), request, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func (c *HTTPClient) RemoveQuestion(ctx context.Context, quizID, questionID string) (models.Quiz, error) {
	var payload models.Quiz
	if err := c.doJSON(ctx, http.MethodDelete, questionPath(quizID, questionID), nil, &payload); err != nil {
		return models.Quiz{}, err
	}
	return payload, nil
}

func quizPath(quizID string) string {
	return "/api/quizzes/" + url.PathEscape(quizID)
}

func questionPath(quizID, questionID string) string {
	return quizPath(quizID) + "/questions/" + url.PathEscape(questionID)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload messageResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = payload.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
