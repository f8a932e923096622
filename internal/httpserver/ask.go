package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fynorra-assistant/internal/domain"
	"fynorra-assistant/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func newAskHandler(uc askUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
			writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{
				Error:   "unsupported_media_type",
				Details: "Content-Type must be application/json",
			})
			return
		}

		var req domain.Question
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "invalid_request",
				Details: err.Error(),
			})
			return
		}

		answer, err := uc.Ask(r.Context(), usecase.AskInput{Question: req.Text})
		if err != nil {
			code, status := statusFromError(err)
			writeJSON(w, status, errorResponse{
				Error:   code,
				Details: err.Error(),
			})
			return
		}

		slog.Info("question answered",
			"request_id", requestIDFrom(r.Context()),
			"from", r.RemoteAddr,
			"question", answer.Question,
			"type", answer.Kind,
		)
		writeJSON(w, http.StatusOK, answer)
	}
}

// statusFromError maps usecase error codes onto HTTP statuses. Validation
// failures surface as 422, anything unexpected as 500.
func statusFromError(err error) (code string, status int) {
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

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
