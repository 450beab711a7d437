package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"dashgen/internal/model"
	"dashgen/internal/session/repository"
	pkgLog "dashgen/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *expirable.LRU[string, model.SessionContext]
	clock func() time.Time
}

// New creates a new session UseCase instance. Loaded contexts are kept
// in an expiring LRU so repeated reads within a conversation avoid
// re-parsing the document from disk.
func New(l pkgLog.Logger, repo repository.Repository, cacheSize int, cacheTTL time.Duration) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, model.SessionContext](cacheSize, nil, cacheTTL),
		clock: time.Now,
	}
}
