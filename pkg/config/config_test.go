package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_OllamaConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("OLLAMA_BASE_URL", "http://test-ollama:11434")
	os.Setenv("EMBEDDING_MODEL_NAME", "test-embed")
	os.Setenv("EMBEDDING_DIM", "384")
	defer func() {
		os.Unsetenv("OLLAMA_BASE_URL")
		os.Unsetenv("EMBEDDING_MODEL_NAME")
		os.Unsetenv("EMBEDDING_DIM")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify Ollama config
	assert.Equal(t, "http://test-ollama:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "test-embed", cfg.Ollama.EmbeddingModel)
	assert.Equal(t, 384, cfg.Ollama.EmbeddingDim)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("OLLAMA_BASE_URL")
	os.Unsetenv("EMBEDDING_DIM")
	os.Unsetenv("SIMILARITY_TOP_K")
	os.Unsetenv("CARDIOLOGY_POLI_ID")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 768, cfg.Ollama.EmbeddingDim)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 1, cfg.Vision.CardiologyPoliID)
	assert.Equal(t, 2, cfg.Vision.PulmonologyPoliID)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		Database: "detakmedis",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=detakmedis sslmode=disable", cfg.DatabaseDSN())
}
