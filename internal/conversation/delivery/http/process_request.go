package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processInitializeReq binds and validates the initialize request body.
func (h *handler) processInitializeReq(c *gin.Context) (initializeReq, error) {
	var req initializeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSendReq binds the message body and the session id URI param.
// An empty message is a valid reply.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, errors.New("session id is required")
	}
	return req, nil
}
