package skillrepo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmbeddingArray(t *testing.T) {
	out := NormalizeEmbedding([]byte(`[0.1, 0.2, 0.3]`))
	require.Equal(t, []float32{0.1, 0.2, 0.3}, out)
}

func TestNormalizeEmbeddingStringWrappedArray(t *testing.T) {
	out := NormalizeEmbedding([]byte(`"[1, 2, 3]"`))
	require.Equal(t, []float32{1, 2, 3}, out)
}

func TestNormalizeEmbeddingStringKeyedMap(t *testing.T) {
	out := NormalizeEmbedding([]byte(`{"1": 0.5, "0": 0.25, "2": 0.75}`))
	require.Equal(t, []float32{0.25, 0.5, 0.75}, out)
}

func TestNormalizeEmbeddingRejectsNonNumericKeys(t *testing.T) {
	require.Nil(t, NormalizeEmbedding([]byte(`{"0": 0.5, "skill": 0.25}`)))
	require.Nil(t, NormalizeEmbedding([]byte(`{"-1": 0.5}`)))
}

func TestNormalizeEmbeddingUnparseable(t *testing.T) {
	require.Nil(t, NormalizeEmbedding(nil))
	require.Nil(t, NormalizeEmbedding([]byte(``)))
	require.Nil(t, NormalizeEmbedding([]byte(`""`)))
	require.Nil(t, NormalizeEmbedding([]byte(`"not a vector"`)))
	require.Nil(t, NormalizeEmbedding([]byte(`[]`)))
	require.Nil(t, NormalizeEmbedding([]byte(`{}`)))
	require.Nil(t, NormalizeEmbedding([]byte(`true`)))
}
