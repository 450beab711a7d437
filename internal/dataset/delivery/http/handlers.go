package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/pkg/response"
)

// Ingest godoc
// @Summary     Ingest a dataset profile
// @Description Validates a profiler-produced dataset profile (inline or by path) and binds it to a session, creating one when no session_id is given.
// @Tags        Dataset
// @Accept      json
// @Produce     json
// @Param       body body ingestReq true "Profile document or path, optional session id"
// @Success     200 {object} ingestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/datasets [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIngestResp(output))
}

// Sample godoc
// @Summary     Get the sample dataset profile
// @Description Returns a canned e-commerce orders profile for demo flows.
// @Tags        Dataset
// @Produce     json
// @Success     200 {object} sampleResp
// @Router      /api/v1/datasets/sample [GET]
func (h *handler) Sample(c *gin.Context) {
	response.OK(c, h.newSampleResp(h.uc.Sample()))
}
