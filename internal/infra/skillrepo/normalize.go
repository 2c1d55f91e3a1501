package skillrepo

import (
	"encoding/json"
	"sort"
	"strconv"
)

// NormalizeEmbedding converts the embedding shapes seen in stored data into
// a single ordered vector. Legacy rows carry embeddings as JSON arrays, as
// JSON strings wrapping an array, or as string-keyed numeric maps
// ({"0": x, "1": y, ...}); everything downstream only ever sees []float32.
// Returns nil for anything unparseable, which the scorer treats as an
// absent skill rather than a failure.
func NormalizeEmbedding(raw []byte) []float32 {
	if len(raw) == 0 {
		return nil
	}

	var asArray []float64
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return toFloat32(asArray)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return nil
		}
		return NormalizeEmbedding([]byte(asString))
	}

	var asMap map[string]float64
	if err := json.Unmarshal(raw, &asMap); err == nil {
		return mapToVector(asMap)
	}

	return nil
}

// mapToVector orders a string-keyed embedding by numeric key. Keys that are
// not non-negative integers disqualify the whole payload.
func mapToVector(m map[string]float64) []float32 {
	if len(m) == 0 {
		return nil
	}
	indexes := make([]int, 0, len(m))
	byIndex := make(map[int]float64, len(m))
	for key, value := range m {
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 {
			return nil
		}
		indexes = append(indexes, idx)
		byIndex[idx] = value
	}
	sort.Ints(indexes)

	out := make([]float32, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, float32(byIndex[idx]))
	}
	return out
}

func toFloat32(values []float64) []float32 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out
}
