package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hTTS *TTSHandler,
	hSTT *STTHandler,
	hMetrics *MetricsHandler,
	hHealth *HealthHandler,
) {
	// --- корень ---
	r.With(httputil.RecoverMiddleware).
		Get("/", hHealth.Root)

	// --- api ---
	r.Route("/api/v1", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(100, time.Minute),
		)

		// --- синтез ---
		pr.Post("/tts/synthesize", hTTS.Synthesize)

		// --- распознавание ---
		pr.Post("/stt/transcribe", hSTT.Transcribe)
		pr.Get("/stt/status/{operation_id}", hSTT.Status)

		// --- метрики ---
		pr.Get("/metrics", hMetrics.Get)
		pr.Post("/metrics", hMetrics.Post)

		// --- здоровье ---
		pr.Get("/health", hHealth.Health)
	})
}
