package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processEmotionReq binds and validates the emotion analysis request body.
func (h *handler) processEmotionReq(c *gin.Context) (emotionReq, error) {
	var req emotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDraftReq binds and validates the draft message request body.
func (h *handler) processDraftReq(c *gin.Context) (draftReq, error) {
	var req draftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRefineReq binds and validates the refine message request body.
func (h *handler) processRefineReq(c *gin.Context) (refineReq, error) {
	var req refineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
