package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarityIdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.25, 0.75}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarityOrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarityOppositeVectors(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "эмнэлэг хайж байна", NormalizeQuery("  Эмнэлэг,   хайж байна!  "))
	assert.Equal(t, "24 цагийн дэлгүүр", NormalizeQuery(" 24 цагийн - дэлгүүр? "))
	assert.Equal(t, "", NormalizeQuery("!@#$%"))
}

func TestSearchCacheKeyDeterministic(t *testing.T) {
	a := SearchCacheKey("Эмнэлэг хайж байна", "")
	b := SearchCacheKey("эмнэлэг   хайж байна!", "")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "ai-search:")
}

func TestSearchCacheKeyCategorySensitive(t *testing.T) {
	plain := SearchCacheKey("эмнэлэг", "")
	scoped := SearchCacheKey("эмнэлэг", "emneleg")
	assert.NotEqual(t, plain, scoped)
}
