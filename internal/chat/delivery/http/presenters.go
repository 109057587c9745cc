package http

import (
	"time"

	"mental-health-support/internal/chat"
	"mental-health-support/internal/model"
	"mental-health-support/internal/sentiment"
)

// --- Request DTOs ---

type messageDTO struct {
	Role      string     `json:"role"    binding:"required"`
	Content   string     `json:"content" binding:"required"`
	Timestamp *time.Time `json:"timestamp"` // accepted, unused
}

type chatReq struct {
	Messages []messageDTO `json:"messages" binding:"required,min=1,dive"`
	UserID   string       `json:"user_id"  binding:"required"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	messages := make([]model.Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = model.Message{
			Role:    model.Role(m.Role),
			Content: m.Content,
		}
	}
	return chat.ChatInput{
		Messages: messages,
		UserID:   r.UserID,
	}
}

// ---

type emotionReq struct {
	Text   string `json:"text" binding:"required"`
	UserID string `json:"user_id"`
}

func (r emotionReq) validate() error { return nil }

func (r emotionReq) toInput() chat.EmotionInput {
	return chat.EmotionInput{
		Text:   r.Text,
		UserID: r.UserID,
	}
}

// ---

type draftReq struct {
	RecipientType string `json:"recipient_type" binding:"required"`
	Emotion       string `json:"emotion"        binding:"required"`
	Need          string `json:"need"           binding:"required"`
	Situation     string `json:"situation"`
	UserID        string `json:"user_id"`
}

func (r draftReq) validate() error { return nil }

func (r draftReq) toInput() chat.DraftInput {
	return chat.DraftInput{
		RecipientType: r.RecipientType,
		Emotion:       r.Emotion,
		Need:          r.Need,
		Situation:     r.Situation,
		UserID:        r.UserID,
	}
}

// ---

type refineReq struct {
	Draft    string `json:"draft" binding:"required"`
	Feedback string `json:"feedback"`
	UserID   string `json:"user_id"`
}

func (r refineReq) validate() error { return nil }

func (r refineReq) toInput() chat.RefineInput {
	return chat.RefineInput{
		Draft:    r.Draft,
		Feedback: r.Feedback,
		UserID:   r.UserID,
	}
}

// --- Response DTOs ---

type sentimentResp struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

func newSentimentResp(r sentiment.Result) sentimentResp {
	return sentimentResp{
		Score: r.Score,
		Label: string(r.Label),
	}
}

type chatResp struct {
	Response  string        `json:"response"`
	Sentiment sentimentResp `json:"sentiment"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:  out.Response,
		Sentiment: newSentimentResp(out.Sentiment),
	}
}

type emotionResp struct {
	Analysis       string        `json:"analysis"`
	CrisisDetected bool          `json:"crisis_detected"`
	Sentiment      sentimentResp `json:"sentiment"`
}

func newEmotionResp(out chat.EmotionOutput) emotionResp {
	return emotionResp{
		Analysis:       out.Analysis,
		CrisisDetected: out.CrisisDetected,
		Sentiment:      newSentimentResp(out.Sentiment),
	}
}

type draftResp struct {
	Draft       string   `json:"draft"`
	Suggestions []string `json:"suggestions"`
}

func newDraftResp(out chat.DraftOutput) draftResp {
	return draftResp{
		Draft:       out.Draft,
		Suggestions: out.Suggestions,
	}
}

type refineResp struct {
	RefinedDraft string `json:"refined_draft"`
}

func newRefineResp(out chat.RefineOutput) refineResp {
	return refineResp{RefinedDraft: out.RefinedDraft}
}
