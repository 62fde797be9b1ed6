package metrics

import (
	"sync"

	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
)

// Хранилище метрик в памяти процесса. Append-only, порядок = порядок вставки,
// при рестарте всё теряется — так и задумано
type MemoryStore struct {
	mu      sync.RWMutex
	records []ports.Metric
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(m ports.Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, m)
}

// Snapshot отдаёт консистентный срез под один ответ: total, последние limit
// записей и сводку считаем под одной блокировкой
func (s *MemoryStore) Snapshot(limit int) ports.MetricsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.records)

	if limit < 0 {
		limit = 0
	}
	if limit > total {
		limit = total
	}

	recent := make([]ports.Metric, limit)
	copy(recent, s.records[total-limit:])

	return ports.MetricsSnapshot{
		TotalRequests: total,
		RecentMetrics: recent,
		Summary:       s.summary(),
	}
}

// summary вызывается под блокировкой из Snapshot
func (s *MemoryStore) summary() ports.MetricsSummary {
	var sum ports.MetricsSummary
	var totalMs float64

	for _, m := range s.records {
		switch m.Operation {
		case ports.OpTTS:
			sum.TTSRequests++
		case ports.OpSTT:
			sum.STTRequests++
		}
		if m.Status == ports.StatusError {
			sum.Errors++
		}
		totalMs += m.DurationMs
	}

	// пустой стор — средняя 0, без деления на ноль
	if len(s.records) > 0 {
		sum.AvgDurationMs = totalMs / float64(len(s.records))
	}

	return sum
}
