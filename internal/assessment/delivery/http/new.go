package http

import (
	"github.com/gin-gonic/gin"

	"mental-health-support/internal/assessment"
	pkgLog "mental-health-support/pkg/log"
)

// Handler is the public interface for the assessment HTTP delivery layer.
type Handler interface {
	Assess(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assessment.UseCase
}

// New creates a new HTTP handler for the assessment domain.
func New(l pkgLog.Logger, uc assessment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
