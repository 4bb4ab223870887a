// Package transcribe wraps the hosted speech-to-text collaborator. The remote
// service is a Whisper-style REST endpoint accepting an audio upload and
// returning the transcript as JSON.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"
)

// Transcriber converts an uploaded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// HTTPTranscriber posts audio bytes to a Whisper-compatible HTTP endpoint.
type HTTPTranscriber struct {
	url    string
	client *http.Client
}

func NewHTTPTranscriber(url string) *HTTPTranscriber {
	return &HTTPTranscriber{
		url:    url,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio as a multipart form and returns the transcript.
func (t *HTTPTranscriber) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", t.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("transcription endpoint returned status %d: %s", resp.StatusCode, msg)
	}

	var out transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return out.Text, nil
}

// ---------------------------------------------------------------------------
// Mock Transcriber (test double)
// ---------------------------------------------------------------------------

// Call records a single call to Transcribe.
type Call struct {
	Filename string
	Size     int
}

// MockTranscriber is a test double for Transcriber.
type MockTranscriber struct {
	mu         sync.Mutex
	calls      []Call
	Transcript string
	ShouldFail bool
	FailError  string
}

// Transcribe records the call and returns the canned transcript.
func (m *MockTranscriber) Transcribe(_ context.Context, filename string, audio []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Filename: filename, Size: len(audio)})
	if m.ShouldFail {
		return "", errors.New(m.FailError)
	}
	return m.Transcript, nil
}

// Calls returns a copy of recorded calls.
func (m *MockTranscriber) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
