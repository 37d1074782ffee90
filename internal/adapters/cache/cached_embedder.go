package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// CachedEmbedder wraps an Embedder with a read-through cache so repeated
// queries skip the embedding backend. Cache failures are ignored; the
// inner embedder is always the source of truth.
type CachedEmbedder struct {
	inner      providers.Embedder
	cache      providers.CacheProvider
	ttlSeconds int
	metrics    *observability.Metrics
}

// NewCachedEmbedder creates a caching decorator around inner. metrics
// may be nil.
func NewCachedEmbedder(inner providers.Embedder, cache providers.CacheProvider, ttlSeconds int, metrics *observability.Metrics) providers.Embedder {
	return &CachedEmbedder{
		inner:      inner,
		cache:      cache,
		ttlSeconds: ttlSeconds,
		metrics:    metrics,
	}
}

func embeddingCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("embedding:%s", hex.EncodeToString(sum[:]))
}

// Embed returns the cached embedding for text, falling through to the
// inner embedder on a miss.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := embeddingCacheKey(text)

	if raw, err := e.cache.Get(ctx, key); err == nil {
		var embedding []float32
		if err := json.Unmarshal(raw, &embedding); err == nil && len(embedding) > 0 {
			if e.metrics != nil {
				observability.RecordCacheHit(ctx, e.metrics, "embedding")
			}
			return embedding, nil
		}
	}

	if e.metrics != nil {
		observability.RecordCacheMiss(ctx, e.metrics, "embedding")
	}

	embedding, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(embedding); err == nil {
		_ = e.cache.Set(ctx, key, raw, e.ttlSeconds)
	}

	return embedding, nil
}
