package metrics

import (
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
)

const recorderBuffer = 256

// Recorder пишет метрики асинхронно: одна горутина-потребитель вычитывает
// канал и аппендит в стор, поэтому порядок записи строго FIFO
type Recorder struct {
	store ports.MetricsStore
	ch    chan ports.Metric
	done  chan struct{}
	log   *logger.ZapLogger
}

func NewRecorder(store ports.MetricsStore, log *logger.ZapLogger) *Recorder {
	r := &Recorder{
		store: store,
		ch:    make(chan ports.Metric, recorderBuffer),
		done:  make(chan struct{}),
		log:   log,
	}

	go r.loop()

	return r
}

func (r *Recorder) loop() {
	for m := range r.ch {
		r.store.Append(m)
	}
	close(r.done)
}

// Enqueue никогда не блокирует обработчик: при переполненном буфере метрика
// теряется, это best-effort запись
func (r *Recorder) Enqueue(m ports.Metric) {
	select {
	case r.ch <- m:
	default:
		if r.log != nil {
			r.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "metrics buffer full, dropping " + m.Operation + " metric",
			})
		}
	}
}

// Close дожидается, пока потребитель дочитает буфер. Нужен в тестах и при
// остановке; после Close вызывать Enqueue нельзя
func (r *Recorder) Close() {
	close(r.ch)
	<-r.done
}
