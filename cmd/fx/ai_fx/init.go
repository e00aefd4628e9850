package ai_fx

import (
	"log"

	"go.uber.org/fx"
	"yellbook/pkg/utils"
)

var Module = fx.Provide(provideEmbeddingClient)

// provideEmbeddingClient may return a nil client when no API key is set.
// Search then serves the textual fallback instead of failing to boot.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	client, err := utils.NewEmbeddingClientFromEnv()
	if err != nil {
		log.Printf("Embedding client disabled: %v", err)
		return nil
	}
	return client
}
