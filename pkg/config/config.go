package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Ollama    OllamaConfig
	Vision    VisionConfig
	Storage   StorageConfig
	Retrieval RetrievalConfig
	OTEL      OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// EmbeddingCacheTTLSeconds controls how long query embeddings are cached.
	EmbeddingCacheTTLSeconds int
}

// OllamaConfig holds the Ollama backend configuration for both the
// generation model and the embedding model.
type OllamaConfig struct {
	BaseURL        string
	Model          string
	EmbeddingModel string
	EmbeddingDim   int
	TimeoutSeconds int
}

// VisionConfig holds the chest X-ray classifier configuration. An empty
// ModelPath disables the ONNX session and a deterministic mock classifier
// is used instead.
type VisionConfig struct {
	ModelPath   string
	LibraryPath string
	InputName   string
	OutputName  string
	ImageSize   int
	// Specialty assignment rule for classified images: Cardiomegaly maps
	// to cardiology, every other label maps to pulmonology.
	CardiologyPoliID  int
	PulmonologyPoliID int
}

// StorageConfig holds the durable image storage configuration
type StorageConfig struct {
	ImageDir string
}

// RetrievalConfig holds similarity retrieval configuration
type RetrievalConfig struct {
	TopK int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8000),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "detakmedis"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:                     getEnv("REDIS_HOST", "localhost"),
			Port:                     getEnvAsInt("REDIS_PORT", 6379),
			Password:                 getEnv("REDIS_PASSWORD", ""),
			DB:                       getEnvAsInt("REDIS_DB", 0),
			EmbeddingCacheTTLSeconds: getEnvAsInt("EMBEDDING_CACHE_TTL_SECONDS", 3600),
		},
		Ollama: OllamaConfig{
			BaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			Model:          getEnv("LLM_MODEL_NAME", "qwen3:8b"),
			EmbeddingModel: getEnv("EMBEDDING_MODEL_NAME", "nomic-embed-text:latest"),
			EmbeddingDim:   getEnvAsInt("EMBEDDING_DIM", 768),
			TimeoutSeconds: getEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 120),
		},
		Vision: VisionConfig{
			ModelPath:         getEnv("ONNX_MODEL_PATH", ""),
			LibraryPath:       getEnv("ONNX_LIBRARY_PATH", ""),
			InputName:         getEnv("ONNX_INPUT_NAME", "input"),
			OutputName:        getEnv("ONNX_OUTPUT_NAME", "output"),
			ImageSize:         getEnvAsInt("VISION_IMAGE_SIZE", 224),
			CardiologyPoliID:  getEnvAsInt("CARDIOLOGY_POLI_ID", 1),
			PulmonologyPoliID: getEnvAsInt("PULMONOLOGY_POLI_ID", 2),
		},
		Storage: StorageConfig{
			ImageDir: getEnv("UPLOAD_IMAGE_DIR", "./images"),
		},
		Retrieval: RetrievalConfig{
			TopK: getEnvAsInt("SIMILARITY_TOP_K", 5),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "detakmedis-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "0.1.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
