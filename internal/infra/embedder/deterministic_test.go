package embedder

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeterministicEmbedderStable(t *testing.T) {
	e := NewDeterministicEmbedder(32)

	first, err := e.Embed(context.Background(), []string{"guitar lessons"})
	require.NoError(t, err)
	second, err := e.Embed(context.Background(), []string{"guitar lessons"})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDeterministicEmbedderUnitLength(t *testing.T) {
	e := NewDeterministicEmbedder(64)

	vectors, err := e.Embed(context.Background(), []string{"spanish", "welding", "sourdough baking"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	for _, v := range vectors {
		require.Len(t, v, 64)
		var sum float64
		for _, c := range v {
			sum += float64(c) * float64(c)
		}
		require.InDelta(t, 1.0, math.Sqrt(sum), 1e-3)
	}
}

func TestDeterministicEmbedderDistinctTexts(t *testing.T) {
	e := NewDeterministicEmbedder(32)

	vectors, err := e.Embed(context.Background(), []string{"chess", "kayaking"})
	require.NoError(t, err)
	require.NotEqual(t, vectors[0], vectors[1])
}

func TestDeterministicEmbedderDefaultDim(t *testing.T) {
	e := NewDeterministicEmbedder(0)
	vectors, err := e.Embed(context.Background(), []string{"anything"})
	require.NoError(t, err)
	require.Len(t, vectors[0], 32)
}
