package utils

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"strings"
	"unicode"
)

// CosineSimilarity returns the cosine of the angle between a and b.
// Mismatched lengths, empty vectors and zero-magnitude vectors all score 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// NormalizeQuery lower-cases, collapses whitespace and strips everything
// that is not a letter, digit or space. Unicode-aware, so Cyrillic queries
// survive intact.
func NormalizeQuery(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// SearchCacheKey derives the namespaced cache key for a query/category pair.
// Identical normalized text maps to the same key; a category filter changes it.
func SearchCacheKey(query, categorySlug string) string {
	key := NormalizeQuery(query)
	if categorySlug != "" {
		key += ":" + categorySlug
	}
	sum := md5.Sum([]byte(key))
	return "ai-search:" + hex.EncodeToString(sum[:])
}
