package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/pkg/response"
)

// Generate godoc
// @Summary     Generate a dashboard configuration
// @Description Builds the dashboard prompt from the completed conversation, calls the model, and returns the parsed chart configuration.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} dashboardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conversation not complete"
// @Failure     502 {object} response.Resp "Generation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/dashboard [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.Generate(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(cfg))
}

// Export godoc
// @Summary     Export the stored dashboard configuration
// @Description Returns the most recently generated chart configuration for the session.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} dashboardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/dashboard [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.Export(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(cfg))
}
