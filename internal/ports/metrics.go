package ports

// Имена операций во внутренних метриках
const (
	OpTTS       = "TTS"
	OpSTT       = "STT"
	OpSTTResult = "STT_RESULT"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DTO одной метрики. После записи не изменяется.
type Metric struct {
	Timestamp   string   `json:"timestamp"`
	Operation   string   `json:"operation"`
	UserID      string   `json:"user_id"`
	DurationMs  float64  `json:"duration_ms"`
	Status      string   `json:"status"`
	TokensUsed  *int     `json:"tokens_used,omitempty"`
	FileSizeKB  *float64 `json:"file_size_kb,omitempty"`
	Error       string   `json:"error,omitempty"`
	OperationID string   `json:"operation_id,omitempty"`
	Language    string   `json:"language,omitempty"`
}

type MetricsSummary struct {
	TTSRequests   int     `json:"tts_requests"`
	STTRequests   int     `json:"stt_requests"`
	Errors        int     `json:"errors"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// Снимок стора под ответ GET /api/v1/metrics
type MetricsSnapshot struct {
	TotalRequests int            `json:"total_requests"`
	RecentMetrics []Metric       `json:"recent_metrics"`
	Summary       MetricsSummary `json:"summary"`
}

// Хранилище метрик. Живёт только в памяти процесса.
type MetricsStore interface {
	Append(m Metric)
	Snapshot(limit int) MetricsSnapshot
}

// Асинхронная запись метрик: Enqueue не блокирует обработчик запроса
type MetricsRecorder interface {
	Enqueue(m Metric)
}
