package infra

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LizaKevbrina/speechkit-production-api/internal/config"
	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type s3Client struct {
	client *minio.Client
	bucket string
	host   string
}

func NewS3Client(cfg *config.Config) (ports.S3Client, error) {
	// S3_ENDPOINT приходит со схемой (контракт env), minio хочет host:port
	endpoint := cfg.S3Endpoint
	secure := true
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		endpoint = strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		endpoint = strings.TrimPrefix(endpoint, "http://")
		secure = false
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: secure,
		Region: "ru-central1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	return &s3Client{
		client: client,
		bucket: cfg.S3Bucket,
		host:   cfg.S3Endpoint,
	}, nil
}

// PutObject загружает объект и возвращает публичный URL.
// Content-Type выводим из суффикса ключа
func (s *s3Client) PutObject(ctx context.Context, key string, data []byte) (string, error) {
	contentType := "audio/mpeg"
	if strings.HasSuffix(key, ".ogg") {
		contentType = "audio/ogg"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"uploaded-at": time.Now().Format(time.RFC3339)},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ports.ErrStorage, err)
	}

	return s.buildPublicURL(key), nil
}

func (s *s3Client) buildPublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.host, s.bucket, key)
}
