package audio

import (
	"context"
	"errors"
)

type Format string

const (
	FormatMP3     Format = "mp3"
	FormatOggOpus Format = "oggopus"
)

// Формат не распознан ни по сигнатуре, ни по MIME — это ошибка клиента
var ErrUnsupportedFormat = errors.New("unsupported audio format")

type Converter interface {
	ToOggOpus(ctx context.Context, mp3 []byte) ([]byte, error)
}
