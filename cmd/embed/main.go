package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pgvector/pgvector-go"

	"yellbook/internal/infra"
	"yellbook/internal/models/db_models"
	"yellbook/internal/repositories"
	"yellbook/pkg/utils"
)

// batchLimit mirrors the candidate cap used by the search path.
const batchLimit = 1000

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	embedder, err := utils.NewEmbeddingClientFromEnv()
	if err != nil {
		log.Fatalf("Embedding client unavailable: %v", err)
	}
	defer embedder.Close()

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	entryRepo := repositories.NewEntryRepository(db)
	embeddingRepo := repositories.NewEntryEmbeddingRepository(db)

	ctx := context.Background()

	entries, err := entryRepo.ListMissingEmbedding(ctx, batchLimit)
	if err != nil {
		log.Fatalf("Listing entries without embeddings: %v", err)
	}
	log.Printf("Entries needing embeddings: %d", len(entries))

	delay := embedDelay()

	var completed, failed int
	for _, entry := range entries {
		vector, err := embedder.GetEmbedding(ctx, embeddingText(entry))
		if err != nil {
			failed++
			log.Printf("Failed to embed %q: %v", entry.Name, err)
			continue
		}

		row := &db_models.EntryEmbedding{
			EntryID:      entry.ID.String(),
			Name:         entry.Name,
			Summary:      entry.Summary,
			District:     entry.District,
			Phone:        entry.Phone,
			CategoryName: entry.Category.Name,
			CategorySlug: entry.Category.Slug,
			Tags:         tagLabels(entry.Tags),
			Embedding:    pgvector.NewVector(vector),
			EmbeddedAt:   time.Now(),
		}
		if err := embeddingRepo.Upsert(ctx, row); err != nil {
			failed++
			log.Printf("Failed to store embedding for %q: %v", entry.Name, err)
			continue
		}

		completed++
		log.Printf("[%d/%d] %s", completed, len(entries), entry.Name)

		if delay > 0 {
			time.Sleep(delay)
		}
	}

	log.Printf("Embedding run finished: %d completed, %d failed", completed, failed)
}

// embeddingText concatenates the descriptive fields the search queries
// against. Empty fields are skipped.
func embeddingText(entry db_models.Entry) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{
		entry.Name,
		entry.ShortName,
		entry.Summary,
		entry.Description,
		entry.District,
		entry.Province,
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func tagLabels(tags []db_models.Tag) []string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	return labels
}

// embedDelay spaces out provider calls for rate limiting.
// EMBED_DELAY_MS=0 disables the pause.
func embedDelay() time.Duration {
	raw := os.Getenv("EMBED_DELAY_MS")
	if raw == "" {
		return time.Second
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
