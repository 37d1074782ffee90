package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ollama/ollama/api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/pkg/config"
)

// Client talks to a local Ollama server for embeddings and text
// generation. It implements providers.Embedder and providers.Generator.
type Client struct {
	api            *api.Client
	model          string
	embeddingModel string
	embeddingDim   int
}

// NewClient creates a new Ollama client.
func NewClient(cfg *config.OllamaConfig) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, fmt.Errorf("ollama base url is required")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		api:            api.NewClient(base, &http.Client{Timeout: timeout}),
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
		embeddingDim:   cfg.EmbeddingDim,
	}, nil
}

// Embed returns the embedding vector for the given text. A backend
// failure or a vector of the wrong width both surface as
// providers.ErrEmbeddingUnavailable.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()

	resp, err := c.api.Embed(ctx, &api.EmbedRequest{
		Model: c.embeddingModel,
		Input: text,
	})
	if err != nil {
		recordOllamaMetric(ctx, "embed", c.embeddingModel, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrEmbeddingUnavailable, err)
	}

	if len(resp.Embeddings) == 0 {
		err = fmt.Errorf("empty embedding response")
		recordOllamaMetric(ctx, "embed", c.embeddingModel, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrEmbeddingUnavailable, err)
	}

	embedding := resp.Embeddings[0]
	if c.embeddingDim > 0 && len(embedding) != c.embeddingDim {
		err = fmt.Errorf("embedding width %d, want %d", len(embedding), c.embeddingDim)
		recordOllamaMetric(ctx, "embed", c.embeddingModel, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrEmbeddingUnavailable, err)
	}

	recordOllamaMetric(ctx, "embed", c.embeddingModel, time.Since(start), nil)
	return embedding, nil
}

// Generate returns the raw completion for a fully rendered prompt.
// Streaming is disabled; the full response arrives in one callback.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	stream := false

	var sb strings.Builder
	err := c.api.Generate(ctx, &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
	}, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		recordOllamaMetric(ctx, "generate", c.model, time.Since(start), err)
		return "", fmt.Errorf("%w: %v", providers.ErrGenerationFailed, err)
	}

	recordOllamaMetric(ctx, "generate", c.model, time.Since(start), nil)
	return sb.String(), nil
}

type ollamaMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
}

var ollamaMetricsOnce sync.Once
var ollamaMetricsReady bool
var ollamaMetricsInst ollamaMetrics

func ensureOllamaMetrics() {
	ollamaMetricsOnce.Do(func() {
		meter := otel.Meter("github.com/detakmedis/backend/ollama")

		requestCount, err := meter.Int64Counter(
			"ai.ollama.request.count",
			metric.WithDescription("Number of Ollama requests"),
		)
		if err != nil {
			return
		}
		requestDuration, err := meter.Float64Histogram(
			"ai.ollama.request.duration",
			metric.WithDescription("Ollama request duration in milliseconds"),
			metric.WithUnit("ms"),
		)
		if err != nil {
			return
		}
		requestErrors, err := meter.Int64Counter(
			"ai.ollama.request.errors",
			metric.WithDescription("Number of Ollama request errors"),
		)
		if err != nil {
			return
		}

		ollamaMetricsInst = ollamaMetrics{
			requestCount:    requestCount,
			requestDuration: requestDuration,
			requestErrors:   requestErrors,
		}
		ollamaMetricsReady = true
	})
}

func recordOllamaMetric(ctx context.Context, operation, model string, duration time.Duration, err error) {
	ensureOllamaMetrics()
	if !ollamaMetricsReady {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "ollama"),
		attribute.String("ai.operation", operation),
		attribute.String("ai.model", model),
	}

	ollamaMetricsInst.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	ollamaMetricsInst.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		ollamaMetricsInst.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
