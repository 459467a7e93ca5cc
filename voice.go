// voice.go defines the speech collaborators. Transcription and synthesis
// are external services as far as the scheduler is concerned: the provider
// interfaces are the whole contract, and both default to no-ops when no
// endpoint is configured.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// STTProvider turns recorded audio into a lower-cased transcript. An empty
// transcript (or an error) means the turn is skipped, never failed loudly.
type STTProvider interface {
	Transcribe(ctx context.Context, audio io.Reader, format string) (string, error)
	Name() string
}

// TTSProvider speaks a reply. Failures are logged and otherwise ignored;
// losing audio must never lose the text response.
type TTSProvider interface {
	Synthesize(ctx context.Context, text, lang string) (io.ReadCloser, error)
	Name() string
}

// --- HTTP STT (OpenAI-compatible transcription endpoint) ---

type httpSTT struct {
	endpoint string
	apiKey   string
	model    string
}

// NewSTTProvider builds the configured transcription provider, or a no-op
// when no endpoint is set.
func NewSTTProvider(cfg STTConfig) STTProvider {
	if cfg.Endpoint == "" {
		return noopSTT{}
	}
	model := cfg.Model
	if model == "" {
		model = "whisper-1"
	}
	return &httpSTT{endpoint: cfg.Endpoint, apiKey: cfg.APIKey, model: model}
}

func (p *httpSTT) Name() string { return "http-stt" }

func (p *httpSTT) Transcribe(ctx context.Context, audio io.Reader, format string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "audio."+format)
	if err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := w.WriteField("model", p.model); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stt api error: status=%d body=%s", resp.StatusCode, string(body))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.ToLower(strings.TrimSpace(out.Text)), nil
}

// --- HTTP TTS (OpenAI-compatible speech endpoint) ---

type httpTTS struct {
	endpoint string
	apiKey   string
	model    string
	voice    string
}

// NewTTSProvider builds the configured synthesis provider, or a no-op when
// no endpoint is set.
func NewTTSProvider(cfg TTSConfig) TTSProvider {
	if cfg.Endpoint == "" {
		return noopTTS{}
	}
	model := cfg.Model
	if model == "" {
		model = "tts-1"
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "alloy"
	}
	return &httpTTS{endpoint: cfg.Endpoint, apiKey: cfg.APIKey, model: model, voice: voice}
}

func (p *httpTTS) Name() string { return "http-tts" }

func (p *httpTTS) Synthesize(ctx context.Context, text, lang string) (io.ReadCloser, error) {
	reqBody := map[string]any{
		"model":    p.model,
		"input":    text,
		"voice":    p.voice,
		"language": lang,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("tts api error: status=%d body=%s", resp.StatusCode, string(body))
	}
	// Audio stream; caller must close.
	return resp.Body, nil
}

// --- No-op providers (voice disabled) ---

type noopSTT struct{}

func (noopSTT) Name() string { return "stt-disabled" }
func (noopSTT) Transcribe(context.Context, io.Reader, string) (string, error) {
	return "", nil
}

type noopTTS struct{}

func (noopTTS) Name() string { return "tts-disabled" }
func (noopTTS) Synthesize(context.Context, string, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}
