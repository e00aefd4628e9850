package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// EntryEmbedding is the denormalized row the semantic search reads.
// It is written only by the cmd/embed batch job, never by the search path.
type EntryEmbedding struct {
	EntryID      string `gorm:"primaryKey;column:entry_id"`
	Name         string
	Summary      string
	District     string
	Phone        string
	CategoryName string
	CategorySlug string
	Tags         pq.StringArray  `gorm:"type:text[]"`
	Embedding    pgvector.Vector `gorm:"type:vector(768)"`
	EmbeddedAt   time.Time       `gorm:"autoCreateTime"`
}

func (EntryEmbedding) TableName() string {
	return "entry_embeddings"
}
