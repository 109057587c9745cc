package usecase

import (
	"context"

	"mental-health-support/internal/chat"
	"mental-health-support/internal/model"
	"mental-health-support/internal/sentiment"
)

// Chat runs the engine over the latest user message and composes a reply.
// Crisis detection is a guard clause: a flagged message short-circuits into
// the fixed safe reply before ordinary composition is even considered.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if err := validateChatInput(input); err != nil {
		return chat.ChatOutput{}, err
	}

	lastUser := model.LastUserContent(input.Messages)

	crisis := uc.safeDetect(ctx, lastUser)
	result := uc.safeScore(ctx, lastUser)

	if crisis.IsCrisis {
		uc.l.Warnf(ctx, "Chat: crisis language detected (category=%s) for user=%s", crisis.Category, sc.UserID)
		return chat.ChatOutput{
			Response:  CrisisReply,
			Sentiment: result,
			Crisis:    crisis,
		}, nil
	}

	reply := uc.composeReply(ctx, input.Messages, result)

	uc.l.Infof(ctx, "Chat: composed reply for user=%s sentiment=%s score=%.2f", sc.UserID, result.Label, result.Score)

	return chat.ChatOutput{
		Response:  reply,
		Sentiment: result,
		Crisis:    crisis,
	}, nil
}

// AnalyzeEmotion runs the engine over one text.
func (uc *implUseCase) AnalyzeEmotion(ctx context.Context, sc model.Scope, input chat.EmotionInput) (chat.EmotionOutput, error) {
	if input.Text == "" {
		return chat.EmotionOutput{}, chat.ErrEmptyText
	}

	crisis := uc.safeDetect(ctx, input.Text)
	result := uc.safeScore(ctx, input.Text)

	analysis := describeSentiment(result)
	if crisis.IsCrisis {
		analysis = "This message contains language associated with a crisis (" + crisis.Category +
			"). Professional support is strongly recommended."
	}

	return chat.EmotionOutput{
		Analysis:       analysis,
		CrisisDetected: crisis.IsCrisis,
		Sentiment:      result,
	}, nil
}

func validateChatInput(input chat.ChatInput) error {
	if len(input.Messages) == 0 {
		return chat.ErrEmptyMessages
	}
	for _, msg := range input.Messages {
		if msg.Content == "" {
			return chat.ErrInvalidMessage
		}
		if msg.Role != model.RoleUser && msg.Role != model.RoleAssistant {
			return chat.ErrInvalidMessage
		}
	}
	if model.LastUserContent(input.Messages) == "" {
		return chat.ErrInvalidMessage
	}
	return nil
}

// safeScore runs the scorer with panic recovery. Scoring must never take
// the request down: a fault degrades to the neutral default plus a logged
// diagnostic.
func (uc *implUseCase) safeScore(ctx context.Context, text string) (result sentiment.Result) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "safeScore: engine fault recovered: %v", r)
			result = sentiment.Result{Score: 0, Label: sentiment.LabelNeutral}
		}
	}()

	key := sentiment.Normalize(text)
	if cached, ok := uc.sentimentCache.Get(key); ok {
		return cached
	}

	result = uc.scorer.Score(text)
	uc.sentimentCache.Add(key, result)
	return result
}

// safeDetect runs crisis detection with panic recovery. A fault fails
// closed into the non-crisis path only for detection; scoring still runs.
func (uc *implUseCase) safeDetect(ctx context.Context, text string) (crisis sentiment.Crisis) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "safeDetect: engine fault recovered: %v", r)
			crisis = sentiment.Crisis{}
		}
	}()
	return uc.detector.Detect(text)
}

func describeSentiment(r sentiment.Result) string {
	switch r.Label {
	case sentiment.LabelNegative:
		return "The message expresses predominantly negative feelings. Acknowledging them is a good first step."
	case sentiment.LabelPositive:
		return "The message expresses predominantly positive feelings."
	default:
		return "The message reads as emotionally neutral."
	}
}
