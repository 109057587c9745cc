package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mental-health-support/internal/model"
	pkgLog "mental-health-support/pkg/log"
	"mental-health-support/pkg/response"
)

// Assess godoc
// @Summary     Run a mental health self-assessment
// @Description Scores a five-answer questionnaire into stress/anxiety/depression levels, overall wellbeing, and recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body assessReq true "Questionnaire answers"
// @Success     200 {object} assessResp
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/assess [POST]
func (h *handler) Assess(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssessReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	sc := model.Scope{
		UserID:    req.UserID,
		RequestID: pkgLog.RequestIDFromContext(ctx),
	}

	output, err := h.uc.Assess(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Assess: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// Contract endpoint: the body shape is pinned by external clients,
	// so the DTO is marshaled directly instead of enveloped.
	c.JSON(http.StatusOK, newAssessResp(output))
}
