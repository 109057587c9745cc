package http

import (
	"github.com/gin-gonic/gin"
)

// processAssessReq binds and validates the assessment request body. The
// exact answer-count rule lives in the use case; binding only rejects
// missing or structurally broken payloads.
func (h *handler) processAssessReq(c *gin.Context) (assessReq, error) {
	var req assessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
