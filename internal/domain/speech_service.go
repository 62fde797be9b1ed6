package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LizaKevbrina/speechkit-production-api/internal/audio"
	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
	"github.com/LizaKevbrina/speechkit-production-api/internal/speechkit"
)

type speechService struct {
	api       speechkit.API
	s3        ports.S3Client
	converter audio.Converter
	recorder  ports.MetricsRecorder
}

func NewSpeechService(
	api speechkit.API,
	s3 ports.S3Client,
	converter audio.Converter,
	recorder ports.MetricsRecorder,
) ports.SpeechService {
	return &speechService{
		api:       api,
		s3:        s3,
		converter: converter,
		recorder:  recorder,
	}
}

// Synthesize: SpeechKit TTS → загрузка в Object Storage → метрика.
// Байты от провайдера отдаём наверх без изменений
func (s *speechService) Synthesize(ctx context.Context, in ports.SynthesisInput) (*ports.SynthesisResult, error) {
	start := time.Now()

	audioData, err := s.api.Synthesize(ctx, in.Text, in.Lang, in.Voice, in.Format)
	if err != nil {
		s.logError(ports.OpTTS, in.UserID, start, "", err)
		return nil, err
	}

	key := fmt.Sprintf("synthesized/%s/%s.ogg", in.UserID, time.Now().Format("20060102_150405"))
	if _, err := s.s3.PutObject(ctx, key, audioData); err != nil {
		s.logError(ports.OpTTS, in.UserID, start, "", err)
		return nil, err
	}

	durationMs := sinceMs(start)
	fileSizeKB := float64(len(audioData)) / 1024
	tokens := len(strings.Fields(in.Text))

	s.recorder.Enqueue(ports.Metric{
		Timestamp:  time.Now().Format(time.RFC3339),
		Operation:  ports.OpTTS,
		UserID:     in.UserID,
		DurationMs: durationMs,
		Status:     ports.StatusSuccess,
		TokensUsed: &tokens,
		FileSizeKB: &fileSizeKB,
	})

	return &ports.SynthesisResult{
		Audio:      audioData,
		S3Path:     key,
		DurationMs: durationMs,
		FileSizeKB: fileSizeKB,
	}, nil
}

// StartTranscription: определяем формат, mp3 перегоняем в ogg/opus,
// грузим в Object Storage и запускаем длительное распознавание
func (s *speechService) StartTranscription(ctx context.Context, data []byte, mimeType, userID, lang string) (*ports.TranscriptionStarted, error) {
	start := time.Now()

	format, err := audio.DetectFormat(data, mimeType)
	if err != nil {
		s.logError(ports.OpSTT, userID, start, "", err)
		return nil, err
	}

	oggData := data
	if format == audio.FormatMP3 {
		oggData, err = s.converter.ToOggOpus(ctx, data)
		if err != nil {
			s.logError(ports.OpSTT, userID, start, "", err)
			return nil, err
		}
	}

	key := fmt.Sprintf("audio/%s/%s.ogg", userID, time.Now().Format("20060102_150405"))
	uri, err := s.s3.PutObject(ctx, key, oggData)
	if err != nil {
		s.logError(ports.OpSTT, userID, start, "", err)
		return nil, err
	}

	operationID, err := s.api.StartRecognition(ctx, uri, lang)
	if err != nil {
		s.logError(ports.OpSTT, userID, start, "", err)
		return nil, err
	}

	fileSizeKB := float64(len(oggData)) / 1024

	s.recorder.Enqueue(ports.Metric{
		Timestamp:   time.Now().Format(time.RFC3339),
		Operation:   ports.OpSTT,
		UserID:      userID,
		DurationMs:  sinceMs(start),
		Status:      ports.StatusSuccess,
		FileSizeKB:  &fileSizeKB,
		OperationID: operationID,
	})

	return &ports.TranscriptionStarted{
		OperationID: operationID,
		S3Path:      key,
		FileSizeKB:  fileSizeKB,
	}, nil
}

// CheckOperation — один опрос провайдера без локального состояния.
// Ошибку завершённой операции отдаём как есть, метрикой успеха не считаем
func (s *speechService) CheckOperation(ctx context.Context, operationID string) (*ports.OperationStatus, error) {
	start := time.Now()

	op, err := s.api.GetOperation(ctx, operationID)
	if err != nil {
		s.logError(ports.OpSTTResult, "", start, operationID, err)
		return nil, err
	}

	status := &ports.OperationStatus{
		OperationID: operationID,
		Done:        op.Done,
		CreatedAt:   op.CreatedAt,
		ModifiedAt:  op.ModifiedAt,
	}

	if !op.Done {
		return status, nil
	}

	if op.Error != nil {
		status.Error = &ports.ProviderError{
			Code:    op.Error.Code,
			Message: op.Error.Message,
		}
		return status, nil
	}

	if op.Response != nil {
		parts := make([]string, 0, len(op.Response.Chunks))
		for _, ch := range op.Response.Chunks {
			if len(ch.Alternatives) > 0 {
				parts = append(parts, ch.Alternatives[0].Text)
			}
		}
		status.Text = strings.Join(parts, " ")
		status.ChunksCount = len(op.Response.Chunks)

		s.recorder.Enqueue(ports.Metric{
			Timestamp:   time.Now().Format(time.RFC3339),
			Operation:   ports.OpSTTResult,
			DurationMs:  sinceMs(start),
			Status:      ports.StatusSuccess,
			OperationID: operationID,
		})
	}

	return status, nil
}

func (s *speechService) logError(op, userID string, start time.Time, operationID string, err error) {
	s.recorder.Enqueue(ports.Metric{
		Timestamp:   time.Now().Format(time.RFC3339),
		Operation:   op,
		UserID:      userID,
		DurationMs:  sinceMs(start),
		Status:      ports.StatusError,
		Error:       err.Error(),
		OperationID: operationID,
	})
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
