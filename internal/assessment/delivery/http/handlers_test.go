package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	assessUC "mental-health-support/internal/assessment/usecase"
	"mental-health-support/internal/lexicon"
	pkgLog "mental-health-support/pkg/log"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), assessUC.New(pkgLog.NewNop(), lexicon.MustDefault()))
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

const highStressBody = `{
	"user_responses": [
		{"question": "How have you been feeling lately?", "answer": "I have been feeling very stressed and overwhelmed."},
		{"question": "Have you been experiencing any stress?", "answer": "Yes, I am under a lot of pressure at work and home."},
		{"question": "How is your sleep quality?", "answer": "I have trouble sleeping due to stress and anxiety."},
		{"question": "Do you have any concerns about your mental health?", "answer": "I am worried about my stress levels and how they affect me."},
		{"question": "What activities do you enjoy doing?", "answer": "I used to enjoy reading but now I feel too stressed to focus."}
	],
	"user_id": "test_user"
}`

const calmBody = `{
	"user_responses": [
		{"question": "How have you been feeling lately?", "answer": "I have been feeling good and relaxed."},
		{"question": "Have you been experiencing any stress?", "answer": "Not really, things have been going smoothly."},
		{"question": "How is your sleep quality?", "answer": "I sleep well most nights and feel rested."},
		{"question": "Do you have any concerns about your mental health?", "answer": "No, I feel mentally healthy and balanced."},
		{"question": "What activities do you enjoy doing?", "answer": "I enjoy reading, hiking, and spending time with friends."}
	],
	"user_id": "test_user"
}`

func TestAssessHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("response shape", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/assess", highStressBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}

		assessment, ok := body["assessment"].(map[string]any)
		if !ok {
			t.Fatalf("assessment must be an object, got %v", body["assessment"])
		}
		for _, key := range []string{"stress_level", "anxiety_level", "depression_risk", "overall_wellbeing"} {
			if _, ok := assessment[key].(string); !ok {
				t.Errorf("assessment.%s must be a string, got %v", key, assessment[key])
			}
		}
		recs, ok := body["recommendations"].([]any)
		if !ok || len(recs) == 0 {
			t.Errorf("recommendations must be a non-empty list, got %v", body["recommendations"])
		}
	})

	t.Run("stress-saturated answers score high", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/assess", highStressBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Assessment struct {
				StressLevel string `json:"stress_level"`
			} `json:"assessment"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Assessment.StressLevel != "high" {
			t.Errorf("expected high stress, got %s", body.Assessment.StressLevel)
		}
	})

	t.Run("calm answers score low", func(t *testing.T) {
		w := postJSON(t, r, "/api/ai/assess", calmBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Assessment struct {
				StressLevel string `json:"stress_level"`
			} `json:"assessment"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Assessment.StressLevel != "low" {
			t.Errorf("expected low stress, got %s", body.Assessment.StressLevel)
		}
	})

	t.Run("validation failures return 422", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"missing user_responses", `{"user_id": "test_user"}`},
			{"missing user_id", `{"user_responses": [{"question": "q", "answer": "a"}]}`},
			{"empty list", `{"user_responses": [], "user_id": "test_user"}`},
			{"too few answers", `{"user_responses": [{"question": "q", "answer": "a"}], "user_id": "test_user"}`},
			{"missing answer text", `{"user_responses": [{"question": "q"}], "user_id": "test_user"}`},
			{"malformed json", `{"user_responses": [`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				w := postJSON(t, r, "/api/ai/assess", tc.body)
				if w.Code != http.StatusUnprocessableEntity {
					t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
				}
			})
		}
	})
}
