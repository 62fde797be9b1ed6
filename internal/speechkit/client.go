package speechkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Фиксированные таймауты по эндпоинтам: после истечения запрос падает, не висит
const (
	ttsTimeout  = 60 * time.Second
	sttTimeout  = 30 * time.Second
	opTimeout   = 10 * time.Second
	pingTimeout = 5 * time.Second
)

// Ошибка API с кодом и телом ответа — обработчики могут пробросить их клиенту
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("speechkit: status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	apiKey   string
	folderID string
	client   *http.Client

	ttsURL       string
	recognizeURL string
	operationURL string
	pingURL      string
}

func NewClient(apiKey, folderID string) *Client {
	return &Client{
		apiKey:   apiKey,
		folderID: folderID,
		client:   &http.Client{},

		ttsURL:       "https://tts.api.cloud.yandex.net/speech/v1/tts:synthesize",
		recognizeURL: "https://transcribe.api.cloud.yandex.net/speech/stt/v2/longRunningRecognize",
		operationURL: "https://operation.api.cloud.yandex.net/operations/",
		pingURL:      "https://stt.api.cloud.yandex.net/",
	}
}

// TEXT → SPEECH. Возвращает сырые байты аудио как есть
func (c *Client) Synthesize(ctx context.Context, text, lang, voice, format string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, ttsTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("text", text)
	form.Set("lang", lang)
	form.Set("voice", voice)
	form.Set("format", format)
	form.Set("folderId", c.folderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ttsURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// Запуск длительного распознавания по URI файла в Object Storage.
// Параметры аудио фиксированы: ogg/opus, 48kHz, моно
func (c *Client) StartRecognition(ctx context.Context, storageURI, lang string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, sttTimeout)
	defer cancel()

	reqBody := recognitionRequest{
		Config: recognitionConfig{
			Specification: specification{
				LanguageCode:      lang,
				Model:             "general",
				AudioEncoding:     "OGG_OPUS",
				SampleRateHertz:   48000,
				AudioChannelCount: 1,
			},
		},
		Audio: audioSource{URI: storageURI},
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.recognizeURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("recognition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var op Operation
	if err := json.Unmarshal(body, &op); err != nil {
		return "", fmt.Errorf("decode operation: %w", err)
	}
	if op.ID == "" {
		return "", fmt.Errorf("no operation id in response: %s", body)
	}

	return op.ID, nil
}

// Один опрос статуса операции. Состояние живёт у провайдера, мы его не храним
func (c *Client) GetOperation(ctx context.Context, operationID string) (*Operation, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.operationURL+operationID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("operation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("operation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var op Operation
	if err := json.Unmarshal(body, &op); err != nil {
		return nil, fmt.Errorf("decode operation: %w", err)
	}

	return &op, nil
}

// Лёгкая проверка доступности API: важен сам факт ответа, не статус
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pingURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("speechkit ping: %w", err)
	}
	resp.Body.Close()

	return nil
}
