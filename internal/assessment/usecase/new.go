package usecase

import (
	"mental-health-support/internal/lexicon"
	"mental-health-support/internal/sentiment"
	pkgLog "mental-health-support/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	scorer *sentiment.Scorer
	store  *lexicon.Store
}

// New creates a new assessment UseCase instance.
func New(l pkgLog.Logger, store *lexicon.Store) *implUseCase {
	return &implUseCase{
		l:      l,
		scorer: sentiment.NewScorer(store),
		store:  store,
	}
}
