package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mental-health-support/internal/model"
	pkgLog "mental-health-support/pkg/log"
	"mental-health-support/pkg/response"
)

// Chat godoc
// @Summary     Chat with the supportive assistant
// @Description Produces a supportive reply plus a sentiment judgment for the latest user message. Crisis language always yields a fixed safe reply.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Conversation history"
// @Success     200 {object} chatResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, h.scope(ctx, req.UserID), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// Contract endpoint: the body shape is pinned by external clients,
	// so the DTO is marshaled directly instead of enveloped.
	c.JSON(http.StatusOK, newChatResp(output))
}

// AnalyzeEmotion godoc
// @Summary     Analyze the emotional content of a text
// @Description Runs sentiment scoring and crisis detection over a single text.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body emotionReq true "Text to analyze"
// @Success     200 {object} emotionResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/analyze-emotion [POST]
func (h *handler) AnalyzeEmotion(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEmotionReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.AnalyzeEmotion(ctx, h.scope(ctx, req.UserID), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeEmotion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, newEmotionResp(output))
}

// DraftMessage godoc
// @Summary     Draft a message to the user's support network
// @Description Generates a message draft from the recipient, emotion, and need, plus writing suggestions.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body draftReq true "Message context"
// @Success     200 {object} draftResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/draft-message [POST]
func (h *handler) DraftMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDraftReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.DraftMessage(ctx, h.scope(ctx, req.UserID), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DraftMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, newDraftResp(output))
}

// RefineMessage godoc
// @Summary     Refine a drafted message
// @Description Reworks a draft according to feedback; defaults to making it more concise.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body refineReq true "Draft and feedback"
// @Success     200 {object} refineResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/refine-message [POST]
func (h *handler) RefineMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefineReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.RefineMessage(ctx, h.scope(ctx, req.UserID), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RefineMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, newRefineResp(output))
}

func (h *handler) scope(ctx context.Context, userID string) model.Scope {
	return model.Scope{
		UserID:    userID,
		RequestID: pkgLog.RequestIDFromContext(ctx),
	}
}
