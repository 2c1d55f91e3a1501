package scheduling

import (
	"context"

	"github.com/google/uuid"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

// ProfileRepository supplies per-user scheduling profiles. Adapters
// normalize friendly timezone names and 12-hour window forms before the
// schedule reaches this package.
type ProfileRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (UserSchedule, bool, error)
}

// MeetingRepository supplies booked meetings for conflict filtering and is
// where a finally chosen slot is persisted as a pending meeting.
type MeetingRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ExistingMeeting, error)
	Create(ctx context.Context, meeting ExistingMeeting) error
}

// Matcher decides whether a pairing warrants scheduling and how many
// sessions to plan.
type Matcher interface {
	Compare(ctx context.Context, userA, userB uuid.UUID) (matching.MatchResult, error)
}
