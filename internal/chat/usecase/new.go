package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mental-health-support/internal/chat"
	"mental-health-support/internal/lexicon"
	"mental-health-support/internal/sentiment"
	pkgLog "mental-health-support/pkg/log"
)

const (
	sentimentCacheSize = 1024
	sentimentCacheTTL  = 10 * time.Minute
)

type implUseCase struct {
	l        pkgLog.Logger
	scorer   *sentiment.Scorer
	detector *sentiment.Detector
	llm      chat.ReplyGenerator // nil when no provider is configured

	// Scoring is pure, so results for identical normalized text can be
	// cached. Bounded and TTL'd; purely an optimization.
	sentimentCache *expirable.LRU[string, sentiment.Result]
}

// New creates a new chat UseCase instance. llm may be nil; reply
// composition then uses deterministic templates only.
func New(l pkgLog.Logger, store *lexicon.Store, llm chat.ReplyGenerator) *implUseCase {
	return &implUseCase{
		l:              l,
		scorer:         sentiment.NewScorer(store),
		detector:       sentiment.NewDetector(store),
		llm:            llm,
		sentimentCache: expirable.NewLRU[string, sentiment.Result](sentimentCacheSize, nil, sentimentCacheTTL),
	}
}
