package usecase

import (
	"context"

	"mental-health-support/internal/model"
	"mental-health-support/internal/sentiment"
	"mental-health-support/pkg/llmprovider"
)

// composeReply builds the non-crisis reply. The LLM path is best-effort:
// any provider failure falls back to deterministic templates, so a slow or
// broken provider never leaves the request without a response.
func (uc *implUseCase) composeReply(ctx context.Context, messages []model.Message, result sentiment.Result) string {
	if uc.llm != nil {
		if reply, ok := uc.generateReply(ctx, messages); ok {
			return reply
		}
	}
	return uc.templateReply(messages, result)
}

func (uc *implUseCase) generateReply(ctx context.Context, messages []model.Message) (string, bool) {
	req := &llmprovider.Request{
		SystemPrompt: CounselorSystemPrompt,
		Messages:     toProviderMessages(messages),
		Temperature:  0.7,
	}

	resp, err := uc.llm.GenerateReply(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "generateReply: provider chain failed, using template fallback: %v", err)
		return "", false
	}
	if resp.Content == "" {
		return "", false
	}
	return resp.Content, true
}

// templateReply picks a deterministic reply for the sentiment label. The
// variant rotates with conversation length and skips the previous assistant
// turn, so multi-turn conversations don't hear the same sentence twice in
// a row.
func (uc *implUseCase) templateReply(messages []model.Message, result sentiment.Result) string {
	var pool []string
	switch result.Label {
	case sentiment.LabelNegative:
		pool = negativeReplies
	case sentiment.LabelPositive:
		pool = positiveReplies
	default:
		pool = neutralReplies
	}

	idx := len(messages) % len(pool)
	if prev := lastAssistantContent(messages); prev != "" && pool[idx] == prev {
		idx = (idx + 1) % len(pool)
	}
	return pool[idx]
}

func lastAssistantContent(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleAssistant {
			return messages[i].Content
		}
	}
	return ""
}

func toProviderMessages(messages []model.Message) []llmprovider.Message {
	out := make([]llmprovider.Message, len(messages))
	for i, msg := range messages {
		out[i] = llmprovider.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return out
}
