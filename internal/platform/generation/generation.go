// Package generation wraps the hosted language-model collaborator behind a
// small Generator interface so domain services never talk to the vendor SDK
// directly. The model client is expensive to build and is constructed once at
// startup with process lifetime.
package generation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// Generator produces free text from an instruction-formatted prompt. The
// output-length budget is fixed at construction time.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator generates text using Google's Gemini API.
type GeminiGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

// NewGeminiGenerator creates a Gemini-backed Generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, maxTokens int32) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create generation client: %w", err)
	}

	return &GeminiGenerator{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Generate sends the prompt to the model and returns the generated text
// verbatim.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			MaxOutputTokens: g.maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}

// Name returns the generator name for logging.
func (g *GeminiGenerator) Name() string {
	return fmt.Sprintf("gemini:%s", g.model)
}

// DisabledGenerator stands in when no API key is configured, which is only
// allowed in development. Every call fails with a configuration error, so the
// server still boots and the analyze endpoint reports the missing key.
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(context.Context, string) (string, error) {
	return "", errors.New("generation is not configured: set GENAI_API_KEY")
}

// ---------------------------------------------------------------------------
// Mock Generator (test double)
// ---------------------------------------------------------------------------

// Call records a single call to Generate.
type Call struct {
	Prompt string
}

// MockGenerator is a test double for Generator. Responses are returned in
// order; after they run out the last one repeats.
type MockGenerator struct {
	mu         sync.Mutex
	calls      []Call
	Responses  []string
	ShouldFail bool
	FailError  string
}

// Generate records the call and returns the next canned response.
func (m *MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Prompt: prompt})
	if m.ShouldFail {
		return "", errors.New(m.FailError)
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	idx := len(m.calls) - 1
	if idx >= len(m.Responses) {
		idx = len(m.Responses) - 1
	}
	return m.Responses[idx], nil
}

// Calls returns a copy of recorded calls.
func (m *MockGenerator) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}
