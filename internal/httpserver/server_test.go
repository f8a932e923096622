package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fynorra-assistant/internal/usecase"
)

type askResponseBody struct {
	Question string  `json:"question"`
	Text     string  `json:"text"`
	Voice    *string `json:"voice"`
	Type     string  `json:"type"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, err := usecase.NewAskService(nil, "", 0, "")
	require.NoError(t, err)
	return NewRouter(svc)
}

func doAsk(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func parseBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestAsk_HappyPath(t *testing.T) {
	router := newTestRouter(t)
	rec := doAsk(t, router, `{"question":"What is Rajkumar's experience?"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	out := parseBody[askResponseBody](t, rec)
	require.Equal(t, "What is Rajkumar's experience?", out.Question)
	require.NotEmpty(t, out.Text)
	require.Nil(t, out.Voice)
	require.Equal(t, "placeholder", out.Type)

	// voice must be present in the body even when null
	raw := parseBody[map[string]json.RawMessage](t, rec)
	require.Contains(t, raw, "voice")
	require.Contains(t, raw, "text")
}

func TestAsk_MissingQuestion(t *testing.T) {
	router := newTestRouter(t)
	rec := doAsk(t, router, `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	out := parseBody[map[string]string](t, rec)
	require.Equal(t, string(usecase.ErrorInvalidInput), out["error"])
}

func TestAsk_MalformedJSON(t *testing.T) {
	router := newTestRouter(t)
	rec := doAsk(t, router, `not-json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	out := parseBody[map[string]string](t, rec)
	require.Equal(t, "invalid_request", out["error"])
}

func TestAsk_UnknownField(t *testing.T) {
	router := newTestRouter(t)
	rec := doAsk(t, router, `{"question":"hi","mode":"turbo"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsk_WrongContentType(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"hi"}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAsk_InstantAnswer(t *testing.T) {
	router := newTestRouter(t)
	rec := doAsk(t, router, `{"question":"hi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := parseBody[askResponseBody](t, rec)
	require.Equal(t, "instant", out.Type)
	require.NotEmpty(t, out.Text)
}

func TestAsk_IdenticalRequestsIdenticalBodies(t *testing.T) {
	router := newTestRouter(t)
	first := doAsk(t, router, `{"question":"What is Rajkumar's experience?"}`)
	second := doAsk(t, router, `{"question":"What is Rajkumar's experience?"}`)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, first.Body.String(), second.Body.String())
}

func TestAsk_PlaceholderTextStableAcrossQuestions(t *testing.T) {
	router := newTestRouter(t)
	first := parseBody[askResponseBody](t, doAsk(t, router, `{"question":"question one"}`))
	second := parseBody[askResponseBody](t, doAsk(t, router, `{"question":"a completely different question"}`))
	require.Equal(t, first.Text, second.Text)
	require.Equal(t, first.Voice, second.Voice)
}

func TestAsk_EchoesProvidedRequestID(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(`{"question":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestAsk_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "https://fynorra.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
