package speechkit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	c := NewClient("test-key", "folder-42")
	c.ttsURL = serverURL + "/speech/v1/tts:synthesize"
	c.recognizeURL = serverURL + "/speech/stt/v2/longRunningRecognize"
	c.operationURL = serverURL + "/operations/"
	c.pingURL = serverURL + "/"
	return c
}

func TestSynthesize(t *testing.T) {
	audio := []byte("OggS\x00fake-opus-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "привет мир", r.Form.Get("text"))
		assert.Equal(t, "ru-RU", r.Form.Get("lang"))
		assert.Equal(t, "jane", r.Form.Get("voice"))
		assert.Equal(t, "oggopus", r.Form.Get("format"))
		assert.Equal(t, "folder-42", r.Form.Get("folderId"))

		w.Write(audio)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Synthesize(context.Background(), "привет мир", "ru-RU", "jane", "oggopus")
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestSynthesizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Synthesize(context.Background(), "text", "ru-RU", "jane", "oggopus")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, `{"error":"rate limit"}`, apiErr.Body)
}

func TestStartRecognition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req recognitionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		spec := req.Config.Specification
		assert.Equal(t, "ru-RU", spec.LanguageCode)
		assert.Equal(t, "general", spec.Model)
		assert.Equal(t, "OGG_OPUS", spec.AudioEncoding)
		assert.Equal(t, 48000, spec.SampleRateHertz)
		assert.Equal(t, 1, spec.AudioChannelCount)
		assert.Equal(t, "https://storage/bucket/audio/u1/x.ogg", req.Audio.URI)

		json.NewEncoder(w).Encode(map[string]any{"id": "op-123", "done": false})
	}))
	defer srv.Close()

	id, err := testClient(srv.URL).StartRecognition(context.Background(), "https://storage/bucket/audio/u1/x.ogg", "ru-RU")
	require.NoError(t, err)
	assert.Equal(t, "op-123", id)
}

func TestStartRecognitionNoOperationID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"done": false}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).StartRecognition(context.Background(), "uri", "ru-RU")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operation id")
}

func TestGetOperationInProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/operations/op-9", r.URL.Path)
		assert.Equal(t, "Api-Key test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"op-9","done":false,"createdAt":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	op, err := testClient(srv.URL).GetOperation(context.Background(), "op-9")
	require.NoError(t, err)
	assert.False(t, op.Done)
	assert.Equal(t, "op-9", op.ID)
	assert.Equal(t, "2026-01-01T00:00:00Z", op.CreatedAt)
	assert.Nil(t, op.Response)
	assert.Nil(t, op.Error)
}

func TestGetOperationDone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": "op-9",
			"done": true,
			"response": {
				"chunks": [
					{"alternatives": [{"text": "первая часть", "confidence": 0.97}], "channelTag": "1"},
					{"alternatives": [{"text": "вторая часть"}], "channelTag": "1"}
				]
			}
		}`))
	}))
	defer srv.Close()

	op, err := testClient(srv.URL).GetOperation(context.Background(), "op-9")
	require.NoError(t, err)
	assert.True(t, op.Done)
	require.NotNil(t, op.Response)
	require.Len(t, op.Response.Chunks, 2)
	assert.Equal(t, "первая часть", op.Response.Chunks[0].Alternatives[0].Text)
}

func TestGetOperationProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"op-9","done":true,"error":{"code":3,"message":"audio too long"}}`))
	}))
	defer srv.Close()

	op, err := testClient(srv.URL).GetOperation(context.Background(), "op-9")
	require.NoError(t, err)
	assert.True(t, op.Done)
	require.NotNil(t, op.Error)
	assert.Equal(t, 3, op.Error.Code)
	assert.Equal(t, "audio too long", op.Error.Message)
}

func TestGetOperationHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("operation not found"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).GetOperation(context.Background(), "missing")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// API отвечает 403 без ключа, но сам факт ответа значит, что оно живо
		w.WriteHeader(http.StatusForbidden)
	}))

	c := testClient(srv.URL)
	require.NoError(t, c.Ping(context.Background()))

	srv.Close()
	require.Error(t, c.Ping(context.Background()))
}
