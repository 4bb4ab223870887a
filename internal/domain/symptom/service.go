package symptom

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/carebridge/carebridge/internal/platform/generation"
	"github.com/carebridge/carebridge/internal/platform/transcribe"
	"github.com/carebridge/carebridge/internal/platform/translate"
)

// audioExtensions are the upload formats accepted by Transcribe.
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
}

type Service struct {
	repo        Repository
	generator   generation.Generator
	transcriber transcribe.Transcriber
	translator  translate.Translator
}

func NewService(repo Repository, gen generation.Generator, tr transcribe.Transcriber, tl translate.Translator) *Service {
	return &Service{repo: repo, generator: gen, transcriber: tr, translator: tl}
}

// Analyze runs the two-step analysis for a symptom description: a
// plain-language explanation, then a triage rating. The generator is never
// invoked for an empty description. Exactly one entry is appended per call.
func (s *Service) Analyze(ctx context.Context, email, symptoms string) (*AnalysisResult, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, ErrEmptySymptoms
	}

	explanation, err := s.generator.Generate(ctx, explanationPrompt(symptoms))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	rawTriage, err := s.generator.Generate(ctx, triagePrompt(symptoms))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	severity, recommendation := parseTriage(rawTriage)

	entry := &SymptomEntry{
		Email:          email,
		Symptoms:       symptoms,
		Explanation:    explanation,
		Severity:       severity,
		Recommendation: recommendation,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &AnalysisResult{
		Entry:         entry,
		RawTriage:     rawTriage,
		SeverityLabel: severityLabel(severity),
	}, nil
}

// Transcribe converts an uploaded audio recording into text for the client to
// feed back into Analyze.
func (s *Service) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio upload is empty")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !audioExtensions[ext] {
		return "", fmt.Errorf("unsupported audio format %q, expected wav or mp3", ext)
	}
	transcript, err := s.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	return transcript, nil
}

// Translate renders a stored entry's explanation and recommendation in one of
// the supported languages. The language is validated before any remote call.
func (s *Service) Translate(ctx context.Context, email string, id uuid.UUID, language string) (*TranslationResult, error) {
	code, err := translate.LanguageCode(language)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, email, id)
	if err != nil {
		return nil, err
	}

	explanation, err := s.translator.Translate(ctx, entry.Explanation, code)
	if err != nil {
		return nil, fmt.Errorf("translate explanation: %w", err)
	}
	recommendation, err := s.translator.Translate(ctx, entry.Recommendation, code)
	if err != nil {
		return nil, fmt.Errorf("translate recommendation: %w", err)
	}

	return &TranslationResult{
		EntryID:                  entry.ID,
		Language:                 language,
		LanguageCode:             code,
		Explanation:              entry.Explanation,
		Recommendation:           entry.Recommendation,
		TranslatedExplanation:    explanation,
		TranslatedRecommendation: recommendation,
	}, nil
}

// List returns the caller's entries, newest first.
func (s *Service) List(ctx context.Context, email string, limit, offset int) ([]*SymptomEntry, int, error) {
	return s.repo.ListByEmail(ctx, email, limit, offset)
}
