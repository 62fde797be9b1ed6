package speechkit

import "context"

type API interface {
	Synthesize(ctx context.Context, text, lang, voice, format string) ([]byte, error)
	StartRecognition(ctx context.Context, storageURI, lang string) (operationID string, err error)
	GetOperation(ctx context.Context, operationID string) (*Operation, error)
	Ping(ctx context.Context) error
}
