package profilerepo

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

// PostgresRepository reads scheduling profiles from the users table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get loads and normalizes one user's scheduling profile. The availability
// column is jsonb and may hold either a JSON array or a JSON-encoded
// string of one; both decode here, and anything else degrades to an empty
// schedule rather than an error.
func (r *PostgresRepository) Get(ctx context.Context, userID uuid.UUID) (scheduling.UserSchedule, bool, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(time_zone, ''), COALESCE(chronotype, ''), COALESCE(availability, 'null'::jsonb)
		FROM users
		WHERE id = $1
		LIMIT 1
	`, userID)

	var timezone, chronotype string
	var rawAvailability []byte
	if err := row.Scan(&timezone, &chronotype, &rawAvailability); err != nil {
		if err == pgx.ErrNoRows {
			return scheduling.UserSchedule{}, false, nil
		}
		return scheduling.UserSchedule{}, false, err
	}

	return scheduling.UserSchedule{
		UserID:       userID,
		Timezone:     ResolveTimezone(timezone),
		Chronotype:   scheduling.Chronotype(chronotype),
		Availability: NormalizeAvailability(decodeAvailability(rawAvailability), timezone),
	}, true, nil
}

func decodeAvailability(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var windows []string
	if err := json.Unmarshal(raw, &windows); err == nil {
		return windows
	}
	var wrapped string
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if err := json.Unmarshal([]byte(wrapped), &windows); err == nil {
			return windows
		}
	}
	return nil
}

var _ scheduling.ProfileRepository = (*PostgresRepository)(nil)
