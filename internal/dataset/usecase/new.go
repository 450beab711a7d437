package usecase

import (
	"github.com/google/uuid"

	"dashgen/internal/dataset"
	"dashgen/internal/session"
	pkgLog "dashgen/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions session.UseCase
	profiler dataset.Profiler
	newID    func() string
}

// New creates a new dataset UseCase instance.
func New(l pkgLog.Logger, sessions session.UseCase, profiler dataset.Profiler) *implUseCase {
	return &implUseCase{
		l:        l,
		sessions: sessions,
		profiler: profiler,
		newID:    uuid.NewString,
	}
}
