package matching

import (
	"math"

	apperrors "github.com/reawakn/matchengine/pkg/errors"
)

// CosineSimilarity computes the cosine of the angle between two vectors.
// Vectors of different lengths indicate corrupt upstream data and yield a
// dimension_mismatch error. A zero vector is defined to have similarity 0
// with everything rather than NaN.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, apperrors.Wrap("dimension_mismatch", "vectors must be of the same length", nil)
	}
	var dot, magA, magB float64
	for i := 0; i < len(a); i++ {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	den := math.Sqrt(magA) * math.Sqrt(magB)
	if den == 0 {
		return 0, nil
	}
	return dot / den, nil
}

// MaxSimilarity returns the highest pairwise cosine similarity across the
// cross product of two vector sets. Max aggregation is deliberate: one
// excellent skill match should surface even when the rest of a profile is
// unrelated. Pairs that fail to compare contribute nothing, and an empty
// set on either side scores 0.
func MaxSimilarity(setA, setB [][]float32) float64 {
	var best float64
	for _, a := range setA {
		for _, b := range setB {
			sim, err := CosineSimilarity(a, b)
			if err != nil {
				continue
			}
			if sim > best {
				best = sim
			}
		}
	}
	return best
}

// bestPair finds the (learn, teach) skill pair with the highest similarity.
// Returns ok=false when either side is empty or no pair could be compared.
func bestPair(learn, teach []ProfileSkill) (score float64, teachSkill ProfileSkill, ok bool) {
	score = -1
	for _, l := range learn {
		for _, t := range teach {
			sim, err := CosineSimilarity(l.Embedding, t.Embedding)
			if err != nil {
				continue
			}
			if sim > score {
				score = sim
				teachSkill = t
				ok = true
			}
		}
	}
	if !ok {
		score = 0
	}
	return score, teachSkill, ok
}
