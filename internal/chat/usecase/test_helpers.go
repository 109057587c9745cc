package usecase

import (
	"context"
	"errors"

	"mental-health-support/internal/lexicon"
	"mental-health-support/pkg/llmprovider"
	pkgLog "mental-health-support/pkg/log"
)

// mockReplyGenerator is a test implementation of chat.ReplyGenerator.
type mockReplyGenerator struct {
	reply      string
	shouldFail bool
	callCount  int
	lastReq    *llmprovider.Request
}

func (m *mockReplyGenerator) GenerateReply(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.callCount++
	m.lastReq = req
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return &llmprovider.Response{
		Content:      m.reply,
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func newTestUseCase() *implUseCase {
	return New(pkgLog.NewNop(), lexicon.MustDefault(), nil)
}

func newTestUseCaseWithLLM(gen *mockReplyGenerator) *implUseCase {
	return New(pkgLog.NewNop(), lexicon.MustDefault(), gen)
}

// newBrokenUseCase has no rule store, so every call into the scoring
// engine panics. Exercises the recovery paths.
func newBrokenUseCase() *implUseCase {
	return New(pkgLog.NewNop(), nil, nil)
}
