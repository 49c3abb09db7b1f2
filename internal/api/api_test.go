package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinashj/socratic/internal/gateway"
	"github.com/avinashj/socratic/internal/progress"
	"github.com/avinashj/socratic/internal/tutor"
)

func questionResponse(text string) gateway.MockResponse {
	return gateway.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"question":%q}`, text)),
	}
}

func evalResponse(score float64, correct bool, feedback string) gateway.MockResponse {
	return gateway.MockResponse{
		Content: json.RawMessage(fmt.Sprintf(`{"score":%v,"correct":%t,"feedback":%q}`, score, correct, feedback)),
	}
}

func newTestServer(responses ...gateway.MockResponse) (*Server, *progress.MemoryStore) {
	mock := gateway.NewMockGateway(responses...)
	ps := progress.NewMemoryStore()
	engine := tutor.NewEngine(mock, ps, nil, tutor.DefaultPolicy())
	return NewServer(engine, ps), ps
}

func doJSON(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer()
	w, out := doJSON(t, s, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", out["status"])
}

func TestStartAndAnswerFlow(t *testing.T) {
	s, ps := newTestServer(
		questionResponse("q1"),
		evalResponse(0.9, true, "nice"),
		questionResponse("q2"),
	)

	w, out := doJSON(t, s, http.MethodPost, "/api/session/start", startBody("alice", "fractions", "beginner"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice_fractions_1", out["session_id"])
	assert.Equal(t, "q1", out["question"])
	assert.Equal(t, "beginner", out["level"])

	w, out = doJSON(t, s, http.MethodPost, "/api/session/answer", map[string]any{
		"session_id": "alice_fractions_1",
		"answer":     "a part of a whole",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["correct"])
	assert.Equal(t, 0.9, out["score"])
	assert.Equal(t, "q2", out["next_question"])
	assert.Equal(t, false, out["done"])

	w, out = doJSON(t, s, http.MethodGet, "/api/session/alice_fractions_1/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["questions_asked"])
	assert.Equal(t, float64(1), out["correct_answers"])

	w, out = doJSON(t, s, http.MethodPost, "/api/session/alice_fractions_1/end", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["progress_saved"])

	// Session is gone after end.
	w, _ = doJSON(t, s, http.MethodGet, "/api/session/alice_fractions_1/progress", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Progress endpoint reflects the persisted session.
	w, out = doJSON(t, s, http.MethodGet, "/api/progress/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), out["overall_accuracy"])

	prog, err := ps.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, prog.TotalQuestions)
}

func TestStartValidatesInput(t *testing.T) {
	s, _ := newTestServer()
	w, _ := doJSON(t, s, http.MethodPost, "/api/session/start", map[string]any{"topic": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartGatewayDownEndsEarly(t *testing.T) {
	s, _ := newTestServer() // no canned responses: every ask fails

	w, out := doJSON(t, s, http.MethodPost, "/api/session/start", startBody("alice", "fractions", "beginner"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, true, out["ended_early"])
}

func TestAnswerUnknownSession(t *testing.T) {
	s, _ := newTestServer()
	w, _ := doJSON(t, s, http.MethodPost, "/api/session/answer", map[string]any{
		"session_id": "ghost",
		"answer":     "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProgressUnknownStudentIsEmpty(t *testing.T) {
	s, _ := newTestServer()
	w, out := doJSON(t, s, http.MethodGet, "/api/progress/stranger", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["overall_accuracy"])
}

func startBody(student, topic, level string) map[string]any {
	return map[string]any{"student_id": student, "topic": topic, "level": level}
}
