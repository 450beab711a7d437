package http

import (
	"github.com/gin-gonic/gin"

	"dashgen/pkg/response"
)

// Initialize godoc
// @Summary     Start a conversation
// @Description Binds a dataset profile to a new session, generates the insight batch, and returns the first turn's message.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body initializeReq true "Dataset profile, or use_sample for the demo profile"
// @Success     200 {object} initializeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Insight generation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations [POST]
func (h *handler) Initialize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInitializeReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Initialize(ctx, req.toProfile())
	if err != nil {
		h.l.Errorf(ctx, "uc.Initialize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newInitializeResp(output))
}

// Send godoc
// @Summary     Send a conversation reply
// @Description Records the user's reply, advances the turn, and returns the next message. done=true once the conversation is complete.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body sendReq true "User reply"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id}/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Send(ctx, req.SessionID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Snapshot godoc
// @Summary     Get conversation state
// @Description Returns the session's bookkeeping record and recorded inputs.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	sc, err := h.sessions.Snapshot(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "sessions.Snapshot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSnapshotResp(id, sc))
}

// End godoc
// @Summary     End a conversation
// @Description Discards the session's durable state.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/{id} [DELETE]
func (h *handler) End(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.End(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.End: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
