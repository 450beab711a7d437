package http

import (
	"errors"

	"dashgen/internal/chartspec"
	"dashgen/internal/session"
	pkgErrors "dashgen/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors.
// Unknown errors fall through and are masked as 500 by pkg/response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "session not found")
	case errors.Is(err, chartspec.ErrNoConfig):
		return pkgErrors.NewHTTPError(404, "no dashboard configuration generated yet")
	case errors.Is(err, chartspec.ErrConversationIncomplete):
		return pkgErrors.NewHTTPError(409, "conversation is not complete")
	case errors.Is(err, chartspec.ErrConfigParse):
		return pkgErrors.NewHTTPError(502, "dashboard configuration generation failed")
	case errors.Is(err, session.ErrCorruptState):
		return pkgErrors.NewHTTPError(500, "session state is corrupt")
	default:
		return err
	}
}
