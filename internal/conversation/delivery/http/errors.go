package http

import (
	"errors"

	"dashgen/internal/conversation"
	"dashgen/internal/session"
	pkgErrors "dashgen/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
// Unknown errors fall through and are masked as 500 by pkg/response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidProfile):
		return pkgErrors.NewHTTPError(400, "invalid dataset profile")
	case errors.Is(err, session.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, conversation.ErrInsightGeneration):
		return pkgErrors.NewHTTPError(502, "insight generation failed")
	case errors.Is(err, session.ErrCorruptState):
		return pkgErrors.NewHTTPError(500, "session state is corrupt")
	default:
		return err
	}
}
