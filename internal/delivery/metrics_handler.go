package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
)

const defaultMetricsLimit = 100

type MetricsHandler struct {
	store    ports.MetricsStore
	recorder ports.MetricsRecorder
}

func NewMetricsHandler(store ports.MetricsStore, recorder ports.MetricsRecorder) *MetricsHandler {
	return &MetricsHandler{
		store:    store,
		recorder: recorder,
	}
}

// Get отдаёт срез метрик: счётчики, последние записи и сводку
func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := defaultMetricsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit: "+err.Error(), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.store.Snapshot(limit))
}

// Post — ручная запись метрики внешним воркфлоу (например, n8n)
func (h *MetricsHandler) Post(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	workflow := r.FormValue("workflow_name")
	userID := r.FormValue("user_id")
	if workflow == "" || userID == "" {
		http.Error(w, "workflow_name and user_id are required", http.StatusBadRequest)
		return
	}

	status := r.FormValue("status")
	if status == "" {
		status = ports.StatusSuccess
	}

	now := time.Now()
	m := ports.Metric{
		Timestamp: now.Format(time.RFC3339),
		Operation: workflow,
		UserID:    userID,
		Status:    status,
		Error:     r.FormValue("error"),
		Language:  r.FormValue("language"),
	}
	if raw := r.FormValue("duration_ms"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			m.DurationMs = v
		}
	}
	if raw := r.FormValue("file_size_kb"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			m.FileSizeKB = &v
		}
	}

	h.recorder.Enqueue(m)

	metricID := userID + "_" + now.Format("20060102150405.000000")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":    "logged",
		"metric_id": metricID,
	})
}
