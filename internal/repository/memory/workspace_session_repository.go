package memory

import (
	"time"

	"project-composer-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// WorkspaceSessionRepository holds live workspace sessions in process
// memory. Sessions idle past the expiration are purged; the durable copy in
// the local slot makes that safe.
type WorkspaceSessionRepository struct {
	cache *cache.Cache
}

func NewWorkspaceSessionRepository() *WorkspaceSessionRepository {
	// Default expiration of 12 hours, purge sweep every 30 minutes.
	c := cache.New(12*time.Hour, 30*time.Minute)
	return &WorkspaceSessionRepository{
		cache: c,
	}
}

func (r *WorkspaceSessionRepository) Save(session *entity.WorkspaceSession) {
	r.cache.Set(session.UserId.String(), session, cache.DefaultExpiration)
}

func (r *WorkspaceSessionRepository) Get(userId uuid.UUID) (*entity.WorkspaceSession, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*entity.WorkspaceSession), true
	}
	return nil, false
}

func (r *WorkspaceSessionRepository) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
