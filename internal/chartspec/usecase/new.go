package usecase

import (
	"dashgen/internal/session"
	"dashgen/pkg/llmprovider"
	pkgLog "dashgen/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions session.UseCase
	manager  *llmprovider.Manager
}

// New creates a new chartspec UseCase instance.
func New(l pkgLog.Logger, sessions session.UseCase, manager *llmprovider.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		manager:  manager,
	}
}
