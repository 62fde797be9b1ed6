package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/LizaKevbrina/speechkit-production-api/internal/audio"
	"github.com/LizaKevbrina/speechkit-production-api/internal/config"
	"github.com/LizaKevbrina/speechkit-production-api/internal/delivery"
	"github.com/LizaKevbrina/speechkit-production-api/internal/domain"
	"github.com/LizaKevbrina/speechkit-production-api/internal/infra"
	"github.com/LizaKevbrina/speechkit-production-api/internal/metrics"
	"github.com/LizaKevbrina/speechkit-production-api/internal/speechkit"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client(cfg)
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	converter := audio.NewFFmpegConverter()

	// =========================================================================
	// CLIENTS (SpeechKit)
	// =========================================================================

	skClient := speechkit.NewClient(cfg.YandexAPIKey, cfg.YandexFolderID)

	// =========================================================================
	// METRICS
	// =========================================================================

	metricsStore := metrics.NewMemoryStore()
	recorder := metrics.NewRecorder(metricsStore, zl)
	defer recorder.Close()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	speechService := domain.NewSpeechService(
		skClient,
		s3Client,
		converter,
		recorder,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// HANDLERS
	ttsHandler := delivery.NewTTSHandler(speechService, zl)
	sttHandler := delivery.NewSTTHandler(speechService, zl)
	metricsHandler := delivery.NewMetricsHandler(metricsStore, recorder)
	healthHandler := delivery.NewHealthHandler(skClient, zl)

	// ROUTES
	delivery.RegisterRoutes(
		r,
		ttsHandler,
		sttHandler,
		metricsHandler,
		healthHandler,
	)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "speechkit-api",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
