package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	v := []float32{0.2, 0.5, 0.8}
	sim, err := CosineSimilarity(v, v)
	require.NoError(t, err)
	require.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarityOpposite(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}
	sim, err := CosineSimilarity(a, b)
	require.NoError(t, err)
	require.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	sim, err := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 0, sim, 1e-9)
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := []float32{0.3, 0.1, 0.9, 0.2}
	b := []float32{0.5, 0.7, 0.1, 0.4}
	ab, err := CosineSimilarity(a, b)
	require.NoError(t, err)
	ba, err := CosineSimilarity(b, a)
	require.NoError(t, err)
	require.InDelta(t, ab, ba, 1e-12)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	sim, err := CosineSimilarity([]float32{0, 0, 0}, []float32{1, 2, 3})
	require.NoError(t, err)
	require.Zero(t, sim)
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "dimension_mismatch"))
}

func TestMaxSimilarityEmptySets(t *testing.T) {
	require.Zero(t, MaxSimilarity(nil, nil))
	require.Zero(t, MaxSimilarity([][]float32{{1, 0}}, nil))
	require.Zero(t, MaxSimilarity(nil, [][]float32{{1, 0}}))
}

func TestMaxSimilarityPicksBestPair(t *testing.T) {
	setA := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
	}
	setB := [][]float32{
		{0, 0, 1},
		{0, 1, 0},
	}
	require.InDelta(t, 1.0, MaxSimilarity(setA, setB), 1e-9)
}

func TestMaxSimilaritySkipsMismatchedPairs(t *testing.T) {
	setA := [][]float32{
		{1, 0},
		{0.6, 0.8, 0},
	}
	setB := [][]float32{
		{0.6, 0.8, 0},
	}
	require.InDelta(t, 1.0, MaxSimilarity(setA, setB), 1e-9)
}

func TestBestPairNamesTeachSkill(t *testing.T) {
	learn := []ProfileSkill{{Skill: "guitar", Embedding: []float32{1, 0}}}
	teach := []ProfileSkill{
		{Skill: "drums", Embedding: []float32{0, 1}, TeachingHours: 3},
		{Skill: "bass guitar", Embedding: []float32{0.9, 0.1}, TeachingHours: 8},
	}
	score, best, ok := bestPair(learn, teach)
	require.True(t, ok)
	require.Equal(t, "bass guitar", best.Skill)
	require.Equal(t, 8, best.TeachingHours)
	require.Greater(t, score, 0.9)
}

func TestBestPairEmptySide(t *testing.T) {
	_, _, ok := bestPair(nil, []ProfileSkill{{Skill: "go", Embedding: []float32{1}}})
	require.False(t, ok)
}
