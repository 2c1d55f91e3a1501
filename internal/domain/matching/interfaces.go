package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SkillRepository supplies and persists advertised skills. Implementations
// normalize embedding payloads into ordered vectors before records ever
// reach this package; a record that could not be normalized carries a nil
// embedding.
type SkillRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SkillRecord, error)
	Add(ctx context.Context, rec SkillRecord) error
	Remove(ctx context.Context, userID uuid.UUID, skill string, kind SkillKind) error
}

// ScoreCache memoizes computed pair scores so repeated lookups between the
// same two users skip the cross-product scan.
type ScoreCache interface {
	Get(ctx context.Context, key string) (MatchResult, bool, error)
	Set(ctx context.Context, key string, result MatchResult, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
