package config

import (
	"fmt"
	"os"
)

// Конфигурация сервиса из переменных окружения.
// Имена переменных — внешний контракт, менять нельзя.
type Config struct {
	Port string

	YandexAPIKey   string
	YandexFolderID string

	S3Bucket    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		YandexAPIKey:   os.Getenv("YANDEX_API_KEY"),
		YandexFolderID: os.Getenv("YANDEX_FOLDER_ID"),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3Endpoint:     getEnv("S3_ENDPOINT", "https://storage.yandexcloud.net"),
		S3AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	required := []struct {
		name  string
		value string
	}{
		{"YANDEX_API_KEY", cfg.YandexAPIKey},
		{"YANDEX_FOLDER_ID", cfg.YandexFolderID},
		{"S3_BUCKET_NAME", cfg.S3Bucket},
		{"AWS_ACCESS_KEY_ID", cfg.S3AccessKey},
		{"AWS_SECRET_ACCESS_KEY", cfg.S3SecretKey},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, fmt.Errorf("%s is not set", v.name)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
