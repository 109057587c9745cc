package chat

import (
	"context"

	"mental-health-support/internal/model"
	"mental-health-support/pkg/llmprovider"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat produces a supportive reply plus a sentiment judgment for the
	// latest user message. Crisis language forces a fixed safe reply.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// AnalyzeEmotion runs the engine over one text without composing a
	// conversational reply.
	AnalyzeEmotion(ctx context.Context, sc model.Scope, input EmotionInput) (EmotionOutput, error)

	// DraftMessage helps the user write a message to their support network.
	DraftMessage(ctx context.Context, sc model.Scope, input DraftInput) (DraftOutput, error)

	// RefineMessage reworks a draft according to feedback.
	RefineMessage(ctx context.Context, sc model.Scope, input RefineInput) (RefineOutput, error)
}

// ReplyGenerator is the slice of the LLM provider manager the chat use case
// needs. Nil-able: without a generator, composition is fully template-driven.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
