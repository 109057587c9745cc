package chat

import (
	"mental-health-support/internal/model"
	"mental-health-support/internal/sentiment"
)

// ChatInput is the input for a conversational turn. Messages is the full
// ordered history; the engine keeps none of it between calls.
type ChatInput struct {
	Messages []model.Message
	UserID   string
}

// ChatOutput is the reply plus the sentiment of the latest user message.
type ChatOutput struct {
	Response  string
	Sentiment sentiment.Result
	Crisis    sentiment.Crisis
}

// EmotionInput is a single text to analyze.
type EmotionInput struct {
	Text   string
	UserID string
}

// EmotionOutput is the engine's judgment of one text.
type EmotionOutput struct {
	Analysis       string
	CrisisDetected bool
	Sentiment      sentiment.Result
}

// DraftInput describes the message the user wants help writing.
type DraftInput struct {
	RecipientType string
	Emotion       string
	Need          string
	Situation     string
	UserID        string
}

// DraftOutput is a drafted message plus writing suggestions.
type DraftOutput struct {
	Draft       string
	Suggestions []string
}

// RefineInput is a draft plus feedback on how to improve it.
type RefineInput struct {
	Draft    string
	Feedback string
	UserID   string
}

// RefineOutput is the reworked draft.
type RefineOutput struct {
	RefinedDraft string
}
