// Package translate wraps the hosted translation collaborator and pins the
// set of languages the product supports. Language validation happens here,
// before any remote call is made.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrUnsupportedLanguage is returned for any target outside the fixed set.
var ErrUnsupportedLanguage = errors.New("unsupported target language")

// supportedLanguages maps display names and ISO codes to the wire code.
var supportedLanguages = map[string]string{
	"english": "en", "en": "en",
	"spanish": "es", "es": "es",
	"french": "fr", "fr": "fr",
	"hindi": "hi", "hi": "hi",
	"arabic": "ar", "ar": "ar",
}

// LanguageCode resolves a user-supplied language name or code to the wire
// code, or ErrUnsupportedLanguage.
func LanguageCode(language string) (string, error) {
	code, ok := supportedLanguages[normalize(language)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return code, nil
}

func normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c == ' ' {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// Translator translates text into one of the supported target languages.
type Translator interface {
	Translate(ctx context.Context, text, targetCode string) (string, error)
}

// HTTPTranslator calls a LibreTranslate-style JSON endpoint.
type HTTPTranslator struct {
	url    string
	client *http.Client
}

func NewHTTPTranslator(url string) *HTTPTranslator {
	return &HTTPTranslator{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate sends text to the remote service. targetCode must already be a
// validated wire code.
func (t *HTTPTranslator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	if _, err := LanguageCode(targetCode); err != nil {
		return "", err
	}

	payload, err := json.Marshal(translateRequest{Q: text, Source: "auto", Target: targetCode})
	if err != nil {
		return "", fmt.Errorf("marshal translate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", t.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translation endpoint returned status %d: %s", resp.StatusCode, msg)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode translation response: %w", err)
	}
	return out.TranslatedText, nil
}

// ---------------------------------------------------------------------------
// Mock Translator (test double)
// ---------------------------------------------------------------------------

// Call records a single call to Translate.
type Call struct {
	Text       string
	TargetCode string
}

// MockTranslator is a test double for Translator. It echoes the input prefixed
// with the target code unless a fixed Result is set.
type MockTranslator struct {
	mu         sync.Mutex
	calls      []Call
	Result     string
	ShouldFail bool
	FailError  string
}

// Translate records the call and returns the canned result.
func (m *MockTranslator) Translate(_ context.Context, text, targetCode string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Text: text, TargetCode: targetCode})
	if m.ShouldFail {
		return "", errors.New(m.FailError)
	}
	if m.Result != "" {
		return m.Result, nil
	}
	return "[" + targetCode + "] " + text, nil
}

// Calls returns a copy of recorded calls.
func (m *MockTranslator) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
