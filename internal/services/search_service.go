package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"yellbook/internal/models/request_models"
	"yellbook/internal/models/response_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/cache"
	"yellbook/pkg/utils"
)

const (
	defaultSearchLimit   = 5
	defaultMinSimilarity = 0.3
	maxQueryLength       = 500
	maxCandidates        = 1000
	searchCacheTTL       = time.Hour
	searchCachePattern   = "ai-search:*"
)

// Match-quality bands shown to users, from the similarity score.
const (
	matchVeryHigh = "Маш өндөр таарц"
	matchGood     = "Сайн таарц"
	matchMedium   = "Дунд таарц"
	matchLow      = "Бага таарц"
	matchText     = "Текст хайлт"
)

type SearchServiceInterface interface {
	Search(ctx context.Context, req request_models.AISearchRequest) ([]response_models.SearchResult, error)
	ClearCache(ctx context.Context, query string) (string, error)
}

type SearchService struct {
	embeddingRepo repositories.EntryEmbeddingRepository
	entryRepo     repositories.EntryRepository
	embedder      utils.EmbeddingClientInterface
	cache         *cache.Client
}

// NewSearchService wires the semantic search. embedder may be nil when no
// API key is configured; cacheClient may be nil when Redis is not configured.
// Both degrade to the textual fallback / uncached path.
func NewSearchService(
	embeddingRepo repositories.EntryEmbeddingRepository,
	entryRepo repositories.EntryRepository,
	embedder utils.EmbeddingClientInterface,
	cacheClient *cache.Client,
) SearchServiceInterface {
	return &SearchService{
		embeddingRepo: embeddingRepo,
		entryRepo:     entryRepo,
		embedder:      embedder,
		cache:         cacheClient,
	}
}

func matchReason(similarity float64) string {
	switch {
	case similarity >= 0.8:
		return matchVeryHigh
	case similarity >= 0.6:
		return matchGood
	case similarity >= 0.4:
		return matchMedium
	default:
		return matchLow
	}
}

func (s *SearchService) Search(ctx context.Context, req request_models.AISearchRequest) ([]response_models.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, utils.ErrEmptyQuery
	}
	if utf8.RuneCountInString(req.Query) > maxQueryLength {
		return nil, utils.ErrQueryTooLong
	}

	limit := defaultSearchLimit
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return nil, utils.ErrInvalidLimit
		}
		limit = *req.Limit
	}

	useCache := true
	if req.UseCache != nil {
		useCache = *req.UseCache
	}

	minSimilarity := defaultMinSimilarity
	if req.MinSimilarity != nil {
		minSimilarity = *req.MinSimilarity
	}

	cacheKey := utils.SearchCacheKey(query, req.CategorySlug)

	if useCache {
		if cached, ok := s.cacheLookup(ctx, cacheKey); ok {
			log.Printf("Search cache hit: %s", query)
			return cached, nil
		}
	}

	queryVector, err := s.embedQuery(ctx, query)
	if err != nil {
		log.Printf("Embedding failed, falling back to text search: %v", err)
		return s.textSearch(ctx, query, limit)
	}

	candidates, err := s.embeddingRepo.ListCandidates(ctx, req.CategorySlug, maxCandidates)
	if err != nil {
		log.Printf("Error fetching embedding candidates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if len(candidates) == 0 {
		log.Println("No embeddings found, falling back to text search")
		return s.textSearch(ctx, query, limit)
	}

	type scored struct {
		candidate  *response_models.SearchResult
		similarity float64
	}

	ranked := make([]scored, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		similarity := utils.CosineSimilarity(queryVector, c.Embedding.Slice())
		if similarity < minSimilarity {
			continue
		}
		ranked = append(ranked, scored{
			candidate: &response_models.SearchResult{
				ID:         c.EntryID,
				Name:       c.Name,
				Summary:    c.Summary,
				Similarity: similarity,
				Category:   c.CategoryName,
				District:   c.District,
				Phone:      c.Phone,
			},
			similarity: similarity,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]response_models.SearchResult, 0, len(ranked))
	for i, item := range ranked {
		r := *item.candidate
		r.Distance = i
		r.MatchReason = matchReason(r.Similarity)
		results = append(results, r)
	}

	if useCache && len(results) > 0 {
		s.cacheStore(ctx, cacheKey, query, results)
	}

	return results, nil
}

// textSearch is the substring fallback: results come back in database order
// with a flat similarity, so callers always get a list even when the
// embedding provider is down.
func (s *SearchService) textSearch(ctx context.Context, query string, limit int) ([]response_models.SearchResult, error) {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) > 1 {
			terms = append(terms, t)
		}
	}

	entries, err := s.entryRepo.TextSearch(ctx, terms, limit)
	if err != nil {
		log.Printf("Text search error: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SearchResult, 0, len(entries))
	for i, entry := range entries {
		results = append(results, response_models.SearchResult{
			ID:          entry.ID.String(),
			Name:        entry.Name,
			Summary:     entry.Summary,
			Similarity:  0.5,
			Distance:    i,
			Category:    entry.Category.Name,
			District:    entry.District,
			Phone:       entry.Phone,
			MatchReason: matchText,
		})
	}
	return results, nil
}

func (s *SearchService) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if s.embedder == nil {
		return nil, utils.ErrInvalidInput
	}
	return s.embedder.GetEmbedding(ctx, utils.NormalizeQuery(query))
}

func (s *SearchService) cacheLookup(ctx context.Context, key string) ([]response_models.SearchResult, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !cache.IsMiss(err) && err != cache.ErrDisabled {
			log.Printf("Cache lookup error: %v", err)
		}
		return nil, false
	}

	var results []response_models.SearchResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		log.Printf("Corrupt cached search result dropped: %v", err)
		return nil, false
	}
	return results, true
}

func (s *SearchService) cacheStore(ctx context.Context, key, query string, results []response_models.SearchResult) {
	encoded, err := json.Marshal(results)
	if err != nil {
		log.Printf("Cache encode error: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, encoded, searchCacheTTL); err != nil {
		log.Printf("Cache save error: %v", err)
		return
	}
	if s.cache.Enabled() {
		log.Printf("Cached search: %s (%d results)", query, len(results))
	}
}

// ClearCache drops one cached search (by its query text) or everything under
// the search namespace. Returns a status message for the API response.
func (s *SearchService) ClearCache(ctx context.Context, query string) (string, error) {
	if !s.cache.Enabled() {
		return "Redis is not configured; cache is disabled.", nil
	}

	if query != "" {
		if err := s.cache.Delete(ctx, utils.SearchCacheKey(query, "")); err != nil {
			return "", err
		}
		return "Cache cleared for query: " + query, nil
	}

	if _, err := s.cache.DeletePattern(ctx, searchCachePattern); err != nil {
		return "", err
	}
	return "All cache cleared", nil
}
