package meetingrepo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

// MemoryRepository keeps booked meetings in-memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	meetings []scheduling.ExistingMeeting
}

// NewMemoryRepository constructs the in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// ListByUser returns meetings in which the user participates on either side.
func (r *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]scheduling.ExistingMeeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []scheduling.ExistingMeeting
	for _, m := range r.meetings {
		if m.HostID == userID || m.GuestID == userID {
			out = append(out, normalizeEnd(m))
		}
	}
	return out, nil
}

// Create appends a booked meeting.
func (r *MemoryRepository) Create(_ context.Context, meeting scheduling.ExistingMeeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	r.meetings = append(r.meetings, normalizeEnd(meeting))
	return nil
}

// normalizeEnd applies the fixed one-hour duration when a meeting was
// stored with only a start.
func normalizeEnd(m scheduling.ExistingMeeting) scheduling.ExistingMeeting {
	if m.EndUTC.IsZero() {
		m.EndUTC = m.StartUTC.Add(time.Hour)
	}
	return m
}

var _ scheduling.MeetingRepository = (*MemoryRepository)(nil)
