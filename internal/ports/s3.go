package ports

import (
	"context"
	"errors"
)

// Ошибка хранилища — обработчики отдают на неё единый 500 "Storage error"
var ErrStorage = errors.New("storage error")

// Низкоуровневый клиент к Object Storage
type S3Client interface {
	PutObject(ctx context.Context, key string, data []byte) (publicURL string, err error)
}
