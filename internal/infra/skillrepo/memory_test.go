package skillrepo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/reawakn/matchengine/internal/domain/matching"
)

func TestMemoryRepositoryUpsertBySkillAndKind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	first := matching.SkillRecord{
		UserID:    userID,
		Skill:     "guitar",
		Kind:      matching.SkillKindTeach,
		Embedding: []float32{1, 0},
	}
	require.NoError(t, repo.Add(ctx, first))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	firstID := records[0].ID
	require.NotEqual(t, uuid.Nil, firstID)

	replacement := first
	replacement.Embedding = []float32{0, 1}
	replacement.TeachingHours = 6
	require.NoError(t, repo.Add(ctx, replacement))

	records, err = repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, firstID, records[0].ID)
	require.Equal(t, []float32{0, 1}, records[0].Embedding)
	require.Equal(t, 6, records[0].TeachingHours)
}

func TestMemoryRepositoryKindsAreDistinct(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Add(ctx, matching.SkillRecord{UserID: userID, Skill: "chess", Kind: matching.SkillKindTeach}))
	require.NoError(t, repo.Add(ctx, matching.SkillRecord{UserID: userID, Skill: "chess", Kind: matching.SkillKindLearn}))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestMemoryRepositoryRemove(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Add(ctx, matching.SkillRecord{UserID: userID, Skill: "chess", Kind: matching.SkillKindTeach}))
	require.NoError(t, repo.Remove(ctx, userID, "chess", matching.SkillKindTeach))
	require.NoError(t, repo.Remove(ctx, userID, "missing", matching.SkillKindTeach))

	records, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, records)
}
