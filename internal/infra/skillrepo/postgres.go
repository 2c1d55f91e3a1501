package skillrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

// PostgresRepository persists skill records in Postgres with a pgvector
// embedding column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListByUser loads a user's skills. The embedding column is read in its
// textual form and normalized, so rows migrated from the legacy jsonb
// representation (arrays or string-keyed maps) still come back as ordered
// vectors; rows that cannot be normalized surface with a nil embedding.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]matching.SkillRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, skill, kind, embedding::text, COALESCE(teaching_hours, 0), created_at
		FROM user_skills
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []matching.SkillRecord
	for rows.Next() {
		var rec matching.SkillRecord
		var rawEmbedding *string
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Skill, &rec.Kind, &rawEmbedding, &rec.TeachingHours, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if rawEmbedding != nil {
			rec.Embedding = NormalizeEmbedding([]byte(*rawEmbedding))
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Add upserts the record on the (user, skill, kind) uniqueness constraint.
func (r *PostgresRepository) Add(ctx context.Context, rec matching.SkillRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_skills (id, user_id, skill, kind, embedding, teaching_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, skill, kind)
		DO UPDATE SET embedding = EXCLUDED.embedding, teaching_hours = EXCLUDED.teaching_hours
	`, rec.ID, rec.UserID, rec.Skill, rec.Kind, pgvector.NewVector(rec.Embedding), rec.TeachingHours, rec.CreatedAt)
	return err
}

// Remove deletes the record keyed by (user, skill, kind).
func (r *PostgresRepository) Remove(ctx context.Context, userID uuid.UUID, skill string, kind matching.SkillKind) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM user_skills
		WHERE user_id = $1 AND skill = $2 AND kind = $3
	`, userID, skill, kind)
	return err
}

var _ matching.SkillRepository = (*PostgresRepository)(nil)
