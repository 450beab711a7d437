package usecase

import (
	"github.com/google/uuid"

	"dashgen/internal/insight"
	"dashgen/internal/session"
	pkgLog "dashgen/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions session.UseCase
	source   insight.Source
	newID    func() string
}

// New creates a new conversation UseCase instance.
func New(l pkgLog.Logger, sessions session.UseCase, source insight.Source) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		source:   source,
		newID:    uuid.NewString,
	}
}
