package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"

	"github.com/LizaKevbrina/speechkit-production-api/internal/audio"
	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
	"github.com/LizaKevbrina/speechkit-production-api/internal/speechkit"
)

const maxUploadSize = 20 << 20

type STTHandler struct {
	speech ports.SpeechService
	log    *logger.ZapLogger
}

func NewSTTHandler(speech ports.SpeechService, log *logger.ZapLogger) *STTHandler {
	return &STTHandler{
		speech: speech,
		log:    log,
	}
}

// Transcribe принимает файл через multipart, кладёт его в бакет
// и запускает длительное распознавание. Само распознавание асинхронное,
// наружу уходит operation_id и ссылка для опроса статуса
func (h *STTHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	userID := r.FormValue("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}
	lang := r.FormValue("lang")
	if lang == "" {
		lang = "ru-RU"
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	started, err := h.speech.StartTranscription(r.Context(), data, header.Header.Get("Content-Type"), userID, lang)
	if err != nil {
		h.writeTranscribeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"operation_id":     started.OperationID,
		"s3_path":          started.S3Path,
		"file_size_kb":     started.FileSizeKB,
		"check_status_url": "/api/v1/stt/status/" + started.OperationID,
	})
}

// Status — опрос операции распознавания по её id
func (h *STTHandler) Status(w http.ResponseWriter, r *http.Request) {
	operationID := chi.URLParam(r, "operation_id")
	if operationID == "" {
		http.Error(w, "operation_id is required", http.StatusBadRequest)
		return
	}

	// любой сбой опроса, включая не-200 от провайдера, наружу уходит как 500
	status, err := h.speech.CheckOperation(r.Context(), operationID)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "stt status error", Error: err})
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := map[string]any{
		"operation_id": status.OperationID,
		"done":         status.Done,
		"created_at":   status.CreatedAt,
		"modified_at":  status.ModifiedAt,
	}
	switch {
	case !status.Done:
		resp["status"] = "in progress"
	case status.Error != nil:
		resp["error"] = status.Error
	default:
		resp["text"] = status.Text
		resp["chunks_count"] = status.ChunksCount
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *STTHandler) writeTranscribeError(w http.ResponseWriter, err error) {
	var apiErr *speechkit.APIError
	switch {
	case errors.Is(err, audio.ErrUnsupportedFormat):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ports.ErrStorage):
		http.Error(w, "Storage error", http.StatusInternalServerError)
	case errors.As(err, &apiErr):
		// статус и тело провайдера пробрасываем как есть
		http.Error(w, apiErr.Body, apiErr.StatusCode)
	default:
		h.log.Log(logger.LogEntry{Level: "error", Message: "stt error", Error: err})
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
