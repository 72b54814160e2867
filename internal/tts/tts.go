// Package tts is the speech-synthesis boundary. The interview core only
// needs text turned into audio bytes; everything about the service behind
// that is opaque.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrServiceFailure reports a failed synthesis call. The failure is
// retryable and never affects session state; callers surface it and move
// on.
var ErrServiceFailure = errors.New("speech synthesis failed")

// Synthesizer turns response text into audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Config holds the HTTP synthesizer settings.
type Config struct {
	// Endpoint is the synthesis API URL. Empty disables speech.
	Endpoint string
	// APIKey authenticates against the service.
	APIKey string
	// VoiceID selects the voice.
	VoiceID string
	// Timeout bounds each synthesis call.
	Timeout time.Duration
}

// ConfigFromEnv reads the NOVEXA_TTS_* variables.
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("NOVEXA_TTS_ENDPOINT"),
		APIKey:   os.Getenv("NOVEXA_TTS_API_KEY"),
		VoiceID:  os.Getenv("NOVEXA_TTS_VOICE"),
		Timeout:  30 * time.Second,
	}
	if cfg.VoiceID == "" {
		cfg.VoiceID = "en-US-naomi"
	}
	return cfg
}

// Client synthesizes speech over HTTP against a configurable endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an HTTP synthesizer.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type synthesizeRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

// Synthesize posts the text and returns the audio bytes. Any transport or
// service error is wrapped in ErrServiceFailure.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{Text: text, VoiceID: c.cfg.VoiceID})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrServiceFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrServiceFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("api-key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: status %d: %s", ErrServiceFailure, resp.StatusCode, snippet)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio: %v", ErrServiceFailure, err)
	}
	return audio, nil
}

// NopSynthesizer is used when speech is not configured.
type NopSynthesizer struct{}

// Synthesize returns no audio.
func (NopSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return nil, nil
}
