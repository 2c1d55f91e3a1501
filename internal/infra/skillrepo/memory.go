package skillrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

// MemoryRepository keeps skill records in-memory; it backs tests and
// deployments without Postgres.
type MemoryRepository struct {
	mu     sync.RWMutex
	skills map[uuid.UUID][]matching.SkillRecord
}

// NewMemoryRepository constructs the in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		skills: make(map[uuid.UUID][]matching.SkillRecord),
	}
}

// ListByUser returns copies of the user's skill records.
func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]matching.SkillRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.skills[userID]
	out := make([]matching.SkillRecord, len(records))
	copy(out, records)
	return out, nil
}

// Add inserts or replaces the record keyed by (user, skill, kind).
func (r *MemoryRepository) Add(_ context.Context, rec matching.SkillRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	list := r.skills[rec.UserID]
	for i, existing := range list {
		if existing.Skill == rec.Skill && existing.Kind == rec.Kind {
			rec.ID = existing.ID
			list[i] = rec
			r.skills[rec.UserID] = list
			return nil
		}
	}
	r.skills[rec.UserID] = append(list, rec)
	return nil
}

// Remove deletes the record keyed by (user, skill, kind), if present.
func (r *MemoryRepository) Remove(_ context.Context, userID uuid.UUID, skill string, kind matching.SkillKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.skills[userID]
	for i, existing := range list {
		if existing.Skill == skill && existing.Kind == kind {
			r.skills[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ matching.SkillRepository = (*MemoryRepository)(nil)
