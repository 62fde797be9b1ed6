package infra_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LizaKevbrina/speechkit-production-api/internal/config"
	"github.com/LizaKevbrina/speechkit-production-api/internal/infra"
	"github.com/LizaKevbrina/speechkit-production-api/internal/ports"
)

func TestPutObject(t *testing.T) {
	payload := []byte("OggS\x00opus-bytes")

	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		S3Bucket:    "speech-bucket",
		S3Endpoint:  srv.URL,
		S3AccessKey: "access",
		S3SecretKey: "secret",
	}

	client, err := infra.NewS3Client(cfg)
	require.NoError(t, err)

	url, err := client.PutObject(context.Background(), "audio/u1/20260101_120000.ogg", payload)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/speech-bucket/audio/u1/20260101_120000.ogg", gotPath)
	assert.Equal(t, "audio/ogg", gotContentType)
	// тело может прийти в chunked-обёртке подписи, сами байты — без изменений
	assert.True(t, bytes.Contains(gotBody, payload))

	assert.Equal(t, srv.URL+"/speech-bucket/audio/u1/20260101_120000.ogg", url)
}

func TestPutObjectContentTypeByExtension(t *testing.T) {
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := &config.Config{
		S3Bucket:    "speech-bucket",
		S3Endpoint:  srv.URL,
		S3AccessKey: "access",
		S3SecretKey: "secret",
	}

	client, err := infra.NewS3Client(cfg)
	require.NoError(t, err)

	_, err = client.PutObject(context.Background(), "audio/u1/raw.mp3", []byte("ID3"))
	require.NoError(t, err)
	assert.Equal(t, "audio/mpeg", gotContentType)
}

func TestPutObjectStorageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`<?xml version="1.0"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		S3Bucket:    "speech-bucket",
		S3Endpoint:  srv.URL,
		S3AccessKey: "access",
		S3SecretKey: "secret",
	}

	client, err := infra.NewS3Client(cfg)
	require.NoError(t, err)

	_, err = client.PutObject(context.Background(), "audio/u1/x.ogg", []byte("data"))
	require.ErrorIs(t, err, ports.ErrStorage)
}

func TestNewS3ClientEndpointScheme(t *testing.T) {
	for _, endpoint := range []string{
		"https://storage.yandexcloud.net",
		"http://localhost:9000",
	} {
		cfg := &config.Config{
			S3Bucket:    "b",
			S3Endpoint:  endpoint,
			S3AccessKey: "a",
			S3SecretKey: "s",
		}
		client, err := infra.NewS3Client(cfg)
		require.NoError(t, err, endpoint)
		require.NotNil(t, client)
	}
}
