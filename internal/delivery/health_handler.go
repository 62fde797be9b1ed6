package delivery

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/LizaKevbrina/speechkit-production-api/internal/speechkit"
)

type HealthHandler struct {
	api speechkit.API
	log *logger.ZapLogger
}

func NewHealthHandler(api speechkit.API, log *logger.ZapLogger) *HealthHandler {
	return &HealthHandler{
		api: api,
		log: log,
	}
}

// Health — проверка живости. Сбой пинга SpeechKit не роняет ответ:
// статус остаётся healthy, недоступность уходит в warning
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":     "healthy",
		"timestamp":  time.Now().Format(time.RFC3339),
		"yandex_api": "available",
		"s3":         "connected",
	}

	if err := h.api.Ping(r.Context()); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "speechkit ping failed", Error: err})
		resp["yandex_api"] = "unreachable"
		resp["warning"] = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Root — карточка сервиса со списком ручек
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"service": "SpeechKit API",
		"version": "2.0",
		"author":  "Elizaveta Kevbrina",
		"endpoints": map[string]string{
			"POST /api/v1/tts/synthesize":           "Text-to-Speech",
			"POST /api/v1/stt/transcribe":           "Speech-to-Text",
			"GET /api/v1/stt/status/{operation_id}": "Recognition status",
			"GET /api/v1/metrics":                   "Metrics dashboard",
			"POST /api/v1/metrics":                  "Log external metric",
			"GET /api/v1/health":                    "Health check",
		},
		"docs": "/docs",
	})
}
