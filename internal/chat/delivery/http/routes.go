package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ai := rg.Group("/ai")
	{
		ai.POST("/chat", h.Chat)
		ai.POST("/analyze-emotion", h.AnalyzeEmotion)
		ai.POST("/draft-message", h.DraftMessage)
		ai.POST("/refine-message", h.RefineMessage)
	}
}
