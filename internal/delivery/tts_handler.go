package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-playground/validator/v10"

	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
)

var validate = validator.New()

type SynthesisRequest struct {
	Text   string `json:"text" validate:"required"`
	Lang   string `json:"lang"`
	Voice  string `json:"voice"`
	UserID string `json:"user_id" validate:"required"`
	Format string `json:"format"`
}

type TTSHandler struct {
	speech ports.SpeechService
	log    *logger.ZapLogger
}

func NewTTSHandler(speech ports.SpeechService, log *logger.ZapLogger) *TTSHandler {
	return &TTSHandler{
		speech: speech,
		log:    log,
	}
}

// Synthesize — синтез речи. В ответ идут байты аудио как есть,
// путь в бакете и тайминги — в заголовках
func (h *TTSHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	// дефолты как в оригинальном API
	req := SynthesisRequest{Lang: "ru-RU", Voice: "jane", Format: "oggopus"}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.speech.Synthesize(r.Context(), ports.SynthesisInput{
		Text:   req.Text,
		Lang:   req.Lang,
		Voice:  req.Voice,
		UserID: req.UserID,
		Format: req.Format,
	})
	if err != nil {
		// любой сбой синтеза — единый 500, метрика уже записана сервисом
		h.log.Log(logger.LogEntry{Level: "error", Message: "tts error", Error: err})
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/ogg")
	w.Header().Set("X-S3-Path", res.S3Path)
	w.Header().Set("X-Duration-Ms", strconv.FormatFloat(res.DurationMs, 'f', -1, 64))
	w.Header().Set("X-File-Size-KB", strconv.FormatFloat(res.FileSizeKB, 'f', -1, 64))
	w.Write(res.Audio)
}
