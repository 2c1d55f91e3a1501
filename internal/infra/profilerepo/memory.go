package profilerepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

// MemoryRepository keeps scheduling profiles in-memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]storedProfile
}

type storedProfile struct {
	Timezone     string
	Chronotype   scheduling.Chronotype
	Availability []string
}

// NewMemoryRepository constructs the in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[uuid.UUID]storedProfile),
	}
}

// Put stores a profile as written; normalization happens on read so the
// store accepts legacy display-timezone and 12-hour forms.
func (r *MemoryRepository) Put(_ context.Context, userID uuid.UUID, timezone string, chronotype scheduling.Chronotype, availability []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := storedProfile{
		Timezone:   timezone,
		Chronotype: chronotype,
	}
	stored.Availability = append(stored.Availability, availability...)
	r.profiles[userID] = stored
	return nil
}

// Get returns the normalized schedule for a user.
func (r *MemoryRepository) Get(_ context.Context, userID uuid.UUID) (scheduling.UserSchedule, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.profiles[userID]
	if !ok {
		return scheduling.UserSchedule{}, false, nil
	}
	return scheduling.UserSchedule{
		UserID:       userID,
		Timezone:     ResolveTimezone(stored.Timezone),
		Chronotype:   stored.Chronotype,
		Availability: NormalizeAvailability(stored.Availability, stored.Timezone),
	}, true, nil
}

var _ scheduling.ProfileRepository = (*MemoryRepository)(nil)
