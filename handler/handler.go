// Package handler adapts the ask service to AWS Lambda behind an API Gateway
// proxy integration, for deployments that skip the long-running HTTP server.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"fynorra-assistant/internal/domain"
	"fynorra-assistant/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

type askUseCase interface {
	Ask(ctx context.Context, in usecase.AskInput) (domain.Answer, error)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler routes API Gateway events into the ask service.
type Handler struct {
	uc askUseCase
}

func NewHandler(uc askUseCase) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: use case must not be nil")
	}
	return &Handler{uc: uc}, nil
}

// newUUID is a hook so tests can pin correlation ids.
var newUUID = func() string {
	return uuid.NewString()
}

func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := correlationID(event.Headers)

	var req domain.Question
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return respond(http.StatusBadRequest, errorResponse{
			Error:   string(usecase.ErrorInvalidInput),
			Details: "body must be a JSON object with a question field",
		}, corrID), nil
	}

	answer, err := h.uc.Ask(ctx, usecase.AskInput{Question: req.Text})
	if err != nil {
		code, status := mapError(err)
		return respond(status, errorResponse{Error: code, Details: err.Error()}, corrID), nil
	}
	return respond(http.StatusOK, answer, corrID), nil
}

func mapError(err error) (code string, status int) {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) {
		switch ucErr.Code {
		case usecase.ErrorInvalidInput:
			return string(ucErr.Code), http.StatusUnprocessableEntity
		case usecase.ErrorInternal:
			return string(ucErr.Code), http.StatusInternalServerError
		}
	}
	return string(usecase.ErrorInternal), http.StatusInternalServerError
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, correlationHeader) && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return newUUID()
}

func respond(status int, body any, corrID string) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		b = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: corrID,
		},
		Body: string(b),
	}
}
