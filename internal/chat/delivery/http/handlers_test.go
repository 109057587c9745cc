package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	chatUC "mental-health-support/internal/chat/usecase"
	"mental-health-support/internal/lexicon"
	pkgLog "mental-health-support/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), chatUC.New(pkgLog.NewNop(), lexicon.MustDefault(), nil))
	RegisterRoutes(r.Group("/api"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestChatHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("valid request returns reply and sentiment", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/chat", `{
			"messages": [{"role": "user", "content": "Hello, how are you?"}],
			"user_id": "test_user"
		}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := decodeBody(t, w)
		resp, ok := body["response"].(string)
		if !ok || resp == "" {
			t.Errorf("response must be a non-empty string, got %v", body["response"])
		}
		sent, ok := body["sentiment"].(map[string]any)
		if !ok {
			t.Fatalf("sentiment must be an object, got %v", body["sentiment"])
		}
		score, ok := sent["score"].(float64)
		if !ok || score < -1 || score > 1 {
			t.Errorf("sentiment.score must be a bounded number, got %v", sent["score"])
		}
		if _, ok := sent["label"].(string); !ok {
			t.Errorf("sentiment.label must be a string, got %v", sent["label"])
		}
	})

	t.Run("crisis message returns safe reply", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/chat", `{
			"messages": [{"role": "user", "content": "I am thinking about harming myself and I don't know what to do."}],
			"user_id": "test_user"
		}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		resp := strings.ToLower(body["response"].(string))
		if !strings.Contains(resp, "help") && !strings.Contains(resp, "support") && !strings.Contains(resp, "professional") {
			t.Errorf("crisis reply missing support language: %q", resp)
		}
		sent := body["sentiment"].(map[string]any)
		if score := sent["score"].(float64); score >= -0.5 {
			t.Errorf("expected score < -0.5, got %f", score)
		}
		if label := sent["label"].(string); label != "negative" {
			t.Errorf("expected negative label, got %s", label)
		}
	})

	t.Run("timestamps on messages are accepted", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/chat", `{
			"messages": [{"role": "user", "content": "Hello", "timestamp": "2026-01-15T10:00:00Z"}],
			"user_id": "test_user"
		}`)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation failures return 422", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"missing user_id", `{"messages": [{"role": "user", "content": "hi"}]}`},
			{"missing messages", `{"user_id": "test_user"}`},
			{"empty messages", `{"messages": [], "user_id": "test_user"}`},
			{"empty content", `{"messages": [{"role": "user", "content": ""}], "user_id": "test_user"}`},
			{"malformed json", `{"messages": [`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := postJSON(t, r, "/api/ai/chat", tc.body)
				if w.Code != http.StatusUnprocessableEntity {
					t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
				}
			})
		}
	})
}

func TestAnalyzeEmotionHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("valid request", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/analyze-emotion", `{"text": "I feel very anxious about tomorrow"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		if _, ok := body["analysis"].(string); !ok {
			t.Errorf("analysis must be a string, got %v", body["analysis"])
		}
		if _, ok := body["crisis_detected"].(bool); !ok {
			t.Errorf("crisis_detected must be a bool, got %v", body["crisis_detected"])
		}
	})

	t.Run("crisis text is flagged", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/analyze-emotion", `{"text": "I keep thinking about hurting myself"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["crisis_detected"] != true {
			t.Error("expected crisis_detected true")
		}
	})

	t.Run("missing text returns 422", func(t *testing.T) {
		if w := postJSON(t, r, "/api/ai/analyze-emotion", `{}`); w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})
}

func TestDraftMessageHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("valid request", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/draft-message", `{
			"recipient_type": "friend",
			"emotion": "overwhelmed",
			"need": "need someone to talk to"
		}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		body := decodeBody(t, w)
		if draft, ok := body["draft"].(string); !ok || draft == "" {
			t.Errorf("draft must be a non-empty string, got %v", body["draft"])
		}
		if suggestions, ok := body["suggestions"].([]any); !ok || len(suggestions) == 0 {
			t.Errorf("suggestions must be a non-empty list, got %v", body["suggestions"])
		}
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		if w := postJSON(t, r, "/api/ai/draft-message", `{"recipient_type": "friend"}`); w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})
}

func TestRefineMessageHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("valid request", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/refine-message", `{"draft": "I wanted to say something"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if refined, ok := body["refined_draft"].(string); !ok || refined == "" {
			t.Errorf("refined_draft must be a non-empty string, got %v", body["refined_draft"])
		}
	})

	t.Run("missing draft returns 422", func(t *testing.T) {
		if w := postJSON(t, r, "/api/ai/refine-message", `{}`); w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", w.Code)
		}
	})
}
