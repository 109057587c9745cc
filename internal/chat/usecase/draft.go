package usecase

import (
	"context"
	"fmt"
	"strings"

	"mental-health-support/internal/chat"
	"mental-health-support/internal/model"
	"mental-health-support/pkg/llmprovider"
)

// DraftMessage helps the user write to their support network. The LLM path
// is optional; the template draft is always available and deterministic.
func (uc *implUseCase) DraftMessage(ctx context.Context, sc model.Scope, input chat.DraftInput) (chat.DraftOutput, error) {
	if input.RecipientType == "" || input.Emotion == "" || input.Need == "" {
		return chat.DraftOutput{}, chat.ErrEmptyText
	}

	prompt := fmt.Sprintf(
		"Please help me write a message to my %s. I'm feeling %s and want to express that I %s.",
		input.RecipientType, input.Emotion, input.Need)
	if input.Situation != "" {
		prompt += " Situation context: " + input.Situation
	}

	draft := uc.generateOrFallback(ctx, prompt, templateDraft(input))

	uc.l.Infof(ctx, "DraftMessage: drafted for user=%s recipient=%s", sc.UserID, input.RecipientType)

	return chat.DraftOutput{
		Draft:       draft,
		Suggestions: DraftSuggestions,
	}, nil
}

// RefineMessage reworks a draft according to feedback.
func (uc *implUseCase) RefineMessage(ctx context.Context, sc model.Scope, input chat.RefineInput) (chat.RefineOutput, error) {
	if input.Draft == "" {
		return chat.RefineOutput{}, chat.ErrEmptyDraft
	}

	feedback := input.Feedback
	if feedback == "" {
		feedback = "Make it more concise and clear"
	}

	prompt := fmt.Sprintf("Please help me improve this message: %s\nFeedback: %s", input.Draft, feedback)
	refined := uc.generateOrFallback(ctx, prompt, templateRefine(input.Draft))

	return chat.RefineOutput{RefinedDraft: refined}, nil
}

func (uc *implUseCase) generateOrFallback(ctx context.Context, prompt, fallback string) string {
	if uc.llm == nil {
		return fallback
	}

	resp, err := uc.llm.GenerateReply(ctx, &llmprovider.Request{
		SystemPrompt: DraftSystemPrompt,
		Messages:     []llmprovider.Message{{Role: "user", Content: prompt}},
		Temperature:  0.7,
	})
	if err != nil || resp.Content == "" {
		uc.l.Warnf(ctx, "generateOrFallback: provider chain failed, using template: %v", err)
		return fallback
	}
	return resp.Content
}

func templateDraft(input chat.DraftInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi, I wanted to reach out because I've been feeling %s lately. ", input.Emotion)
	fmt.Fprintf(&b, "I %s, and it would mean a lot to have your support. ", input.Need)
	if input.Situation != "" {
		fmt.Fprintf(&b, "For some context: %s. ", input.Situation)
	}
	b.WriteString("Thank you for taking the time to read this.")
	return b.String()
}

func templateRefine(draft string) string {
	trimmed := strings.TrimSpace(draft)
	if !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
		trimmed += "."
	}
	return trimmed + " Thank you for your time and support."
}
