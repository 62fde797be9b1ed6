package ports

import "context"

type SynthesisInput struct {
	Text   string
	Lang   string
	Voice  string
	UserID string
	Format string
}

// Результат синтеза: байты ровно те, что вернул SpeechKit
type SynthesisResult struct {
	Audio      []byte
	S3Path     string
	DurationMs float64
	FileSizeKB float64
}

// Результат запуска длительного распознавания
type TranscriptionStarted struct {
	OperationID string
	S3Path      string
	FileSizeKB  float64
}

// Статус операции распознавания; провайдер — единственный источник истины
type OperationStatus struct {
	OperationID string
	Done        bool
	Text        string
	ChunksCount int
	CreatedAt   string
	ModifiedAt  string
	Error       *ProviderError
}

// Ошибка, которую провайдер положил в завершённую операцию.
// Отдаётся клиенту как есть, без преобразования в HTTP-ошибку.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SpeechService interface {
	Synthesize(ctx context.Context, in SynthesisInput) (*SynthesisResult, error)
	StartTranscription(ctx context.Context, data []byte, mimeType, userID, lang string) (*TranscriptionStarted, error)
	CheckOperation(ctx context.Context, operationID string) (*OperationStatus, error)
}
