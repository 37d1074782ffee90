package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/detakmedis/backend/internal/adapters/cache"
	"github.com/detakmedis/backend/internal/adapters/database"
	"github.com/detakmedis/backend/internal/adapters/providers/vision"
	"github.com/detakmedis/backend/internal/adapters/storage"
	"github.com/detakmedis/backend/internal/api/handlers"
	"github.com/detakmedis/backend/internal/api/routes"
	"github.com/detakmedis/backend/internal/application/services"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/generation"
	"github.com/detakmedis/backend/internal/infrastructure/clients/ollama"
	"github.com/detakmedis/backend/internal/infrastructure/clients/onnx"
	"github.com/detakmedis/backend/internal/infrastructure/clients/postgres"
	"github.com/detakmedis/backend/internal/infrastructure/clients/redis"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
	"github.com/detakmedis/backend/pkg/config"
)

func main() {

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize the Ollama client for embeddings and generation
	ollamaClient, err := ollama.NewClient(&cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to initialize Ollama client: %v", err)
	}
	log.Println("Ollama client initialized successfully")

	// Wrap the embedder with the Redis cache when available
	var embedder providers.Embedder = ollamaClient
	if cacheProvider != nil {
		embedder = cache.NewCachedEmbedder(ollamaClient, cacheProvider, cfg.Redis.EmbeddingCacheTTLSeconds, metrics)
		log.Println("Embedding cache enabled")
	} else {
		log.Println("Embedding cache disabled (Redis unavailable)")
	}

	// Initialize the chest X-ray classifier. Without a model path a
	// deterministic mock classifier is used so the API stays usable in
	// development environments.
	var classifier providers.ImageClassifier
	if cfg.Vision.ModelPath == "" {
		log.Println("Warning: ONNX_MODEL_PATH is not set; using mock image classifier")
		classifier = vision.NewMockClassifier()
	} else {
		session, err := onnx.NewSession(
			cfg.Vision.ModelPath,
			cfg.Vision.LibraryPath,
			cfg.Vision.InputName,
			cfg.Vision.OutputName,
		)
		if err != nil {
			log.Fatalf("Failed to load ONNX model: %v", err)
		}
		defer session.Close()
		classifier = vision.NewONNXClassifier(session, cfg.Vision.ImageSize, metrics)
		log.Println("ONNX image classifier initialized successfully")
	}

	// Initialize image storage
	imageStore, err := storage.NewLocalStore(cfg.Storage.ImageDir)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Initialize adapters

	specialtyAdapter := database.NewSpecialtyAdapter(pgClient)
	diseaseAdapter := database.NewDiseaseAdapter(pgClient)
	doctorAdapter := database.NewDoctorAdapter(pgClient)
	medicalImageAdapter := database.NewMedicalImageAdapter(pgClient)
	diagnosisAdapter := database.NewDiagnosisAdapter(pgClient)

	// Initialize services

	orchestrator := generation.NewOrchestrator(ollamaClient)

	retrievalService := services.NewRetrievalService(
		specialtyAdapter,
		diseaseAdapter,
		doctorAdapter,
		cfg.Retrieval.TopK,
	)

	chatService := services.NewChatService(embedder, retrievalService, orchestrator)

	specialtyService := services.NewSpecialtyService(specialtyAdapter, embedder)
	diseaseService := services.NewDiseaseService(diseaseAdapter, specialtyAdapter, embedder)
	doctorService := services.NewDoctorService(doctorAdapter, specialtyAdapter, embedder)

	medicalImageService := services.NewMedicalImageService(
		medicalImageAdapter,
		imageStore,
		classifier,
		services.SpecialtyRouting{
			CardiologyPoliID:  cfg.Vision.CardiologyPoliID,
			PulmonologyPoliID: cfg.Vision.PulmonologyPoliID,
		},
	)

	diagnosisService := services.NewDiagnosisService(
		diagnosisAdapter,
		medicalImageService,
		embedder,
		retrievalService,
		orchestrator,
	)

	// Initialize handlers

	chatHandler := handlers.NewChatHandler(chatService)
	specialtyHandler := handlers.NewSpecialtyHandler(specialtyService, diseaseService, doctorService)
	diseaseHandler := handlers.NewDiseaseHandler(diseaseService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	medicalImageHandler := handlers.NewMedicalImageHandler(medicalImageService)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisService)

	// Set up router

	router := routes.NewRouter(
		chatHandler,
		specialtyHandler,
		diseaseHandler,
		doctorHandler,
		medicalImageHandler,
		diagnosisHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server. The write timeout is generous because chat and
	// diagnosis responses wait on model generation.
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.Ollama.TimeoutSeconds+30) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
