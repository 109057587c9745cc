package http

import (
	"github.com/gin-gonic/gin"

	"mental-health-support/internal/chat"
	pkgLog "mental-health-support/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	AnalyzeEmotion(c *gin.Context)
	DraftMessage(c *gin.Context)
	RefineMessage(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
