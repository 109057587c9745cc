package assessment

import (
	"context"

	"mental-health-support/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Assess scores a five-answer questionnaire into risk levels per axis
	// plus an ordered, non-empty recommendation list.
	Assess(ctx context.Context, sc model.Scope, input AssessInput) (AssessOutput, error)
}
