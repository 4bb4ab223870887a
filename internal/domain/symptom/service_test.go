package symptom

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carebridge/carebridge/internal/platform/generation"
	"github.com/carebridge/carebridge/internal/platform/transcribe"
	"github.com/carebridge/carebridge/internal/platform/translate"
)

// -- Mock Repository --

type mockRepo struct {
	entries map[uuid.UUID]*SymptomEntry
}

func newMockRepo() *mockRepo {
	return &mockRepo{entries: make(map[uuid.UUID]*SymptomEntry)}
}

func (m *mockRepo) Create(_ context.Context, e *SymptomEntry) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	m.entries[e.ID] = e
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, email string, id uuid.UUID) (*SymptomEntry, error) {
	e, ok := m.entries[id]
	if !ok || e.Email != email {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *mockRepo) ListByEmail(_ context.Context, email string, limit, offset int) ([]*SymptomEntry, int, error) {
	var result []*SymptomEntry
	for _, e := range m.entries {
		if e.Email == email {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, len(result), nil
}

func newTestService(repo Repository, gen generation.Generator) (*Service, *transcribe.MockTranscriber, *translate.MockTranslator) {
	trn := &transcribe.MockTranscriber{Transcript: "sore throat and fever"}
	tl := &translate.MockTranslator{}
	return NewService(repo, gen, trn, tl), trn, tl
}

// -- Tests --

func TestAnalyze(t *testing.T) {
	repo := newMockRepo()
	gen := &generation.MockGenerator{Responses: []string{
		"A sore throat is commonly caused by viral infections.",
		"Severity: 2/5. Recommendation: Rest and warm fluids.",
	}}
	svc, _, _ := newTestService(repo, gen)

	result, err := svc.Analyze(context.Background(), "jordan@example.com", "sore throat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := gen.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected exactly 2 generation calls, got %d", len(calls))
	}
	if !strings.Contains(calls[0].Prompt, "sore throat") || !strings.Contains(calls[0].Prompt, "50 words") {
		t.Errorf("unexpected explanation prompt: %q", calls[0].Prompt)
	}
	if !strings.Contains(calls[1].Prompt, "Severity: X/5. Recommendation:") {
		t.Errorf("triage prompt must pin the response format: %q", calls[1].Prompt)
	}

	if result.Entry.Explanation != "A sore throat is commonly caused by viral infections." {
		t.Errorf("explanation must be stored verbatim, got %q", result.Entry.Explanation)
	}
	if result.Entry.Severity != 2 {
		t.Errorf("expected severity 2, got %d", result.Entry.Severity)
	}
	if result.Entry.Recommendation != "Rest and warm fluids." {
		t.Errorf("unexpected recommendation: %q", result.Entry.Recommendation)
	}
	if result.SeverityLabel != "2/5" {
		t.Errorf("unexpected label: %q", result.SeverityLabel)
	}
	if len(repo.entries) != 1 {
		t.Errorf("expected exactly one appended entry, got %d", len(repo.entries))
	}
}

func TestAnalyze_EmptySymptoms(t *testing.T) {
	gen := &generation.MockGenerator{}
	svc, _, _ := newTestService(newMockRepo(), gen)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := svc.Analyze(context.Background(), "jordan@example.com", in)
		if !errors.Is(err, ErrEmptySymptoms) {
			t.Errorf("Analyze(%q): expected ErrEmptySymptoms, got %v", in, err)
		}
	}
	if len(gen.Calls()) != 0 {
		t.Errorf("generator must never be called for empty symptoms, saw %d calls", len(gen.Calls()))
	}
}

func TestAnalyze_UnparseableTriage(t *testing.T) {
	repo := newMockRepo()
	gen := &generation.MockGenerator{Responses: []string{
		"Headaches have many causes.",
		"It could be tension or dehydration, hard to say.",
	}}
	svc, _, _ := newTestService(repo, gen)

	result, err := svc.Analyze(context.Background(), "jordan@example.com", "headache")
	if err != nil {
		t.Fatalf("unparseable triage must not be an error: %v", err)
	}
	if result.Entry.Severity != 0 {
		t.Errorf("expected severity 0, got %d", result.Entry.Severity)
	}
	if result.SeverityLabel != "unknown" {
		t.Errorf("expected unknown label, got %q", result.SeverityLabel)
	}
	if result.RawTriage != "It could be tension or dehydration, hard to say." {
		t.Errorf("raw triage text must be returned, got %q", result.RawTriage)
	}
}

func TestAnalyze_GeneratorFailure(t *testing.T) {
	repo := newMockRepo()
	gen := &generation.MockGenerator{ShouldFail: true, FailError: "quota exceeded"}
	svc, _, _ := newTestService(repo, gen)

	_, err := svc.Analyze(context.Background(), "jordan@example.com", "chest pain")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Error("no entry may be appended when generation fails")
	}
}

func TestTranscribe(t *testing.T) {
	svc, trn, _ := newTestService(newMockRepo(), &generation.MockGenerator{})

	got, err := svc.Transcribe(context.Background(), "recording.wav", []byte{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "sore throat and fever" {
		t.Errorf("unexpected transcript: %q", got)
	}
	if len(trn.Calls()) != 1 {
		t.Errorf("expected 1 transcriber call, got %d", len(trn.Calls()))
	}
}

func TestTranscribe_Rejections(t *testing.T) {
	svc, trn, _ := newTestService(newMockRepo(), &generation.MockGenerator{})

	if _, err := svc.Transcribe(context.Background(), "recording.wav", nil); err == nil {
		t.Error("expected error for empty upload")
	}
	if _, err := svc.Transcribe(context.Background(), "notes.pdf", []byte{1}); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if len(trn.Calls()) != 0 {
		t.Errorf("transcriber must not be called for rejected uploads, saw %d calls", len(trn.Calls()))
	}
}

func TestTranscribe_TranscriberFailure(t *testing.T) {
	svc, trn, _ := newTestService(newMockRepo(), &generation.MockGenerator{})
	trn.ShouldFail = true
	trn.FailError = "connection refused"

	_, err := svc.Transcribe(context.Background(), "recording.wav", []byte{1, 2, 3})
	if !errors.Is(err, ErrTranscriptionFailed) {
		t.Fatalf("expected ErrTranscriptionFailed, got %v", err)
	}
}

func TestTranslate(t *testing.T) {
	repo := newMockRepo()
	entry := &SymptomEntry{Email: "jordan@example.com", Explanation: "a viral infection", Recommendation: "rest"}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	svc, _, tl := newTestService(repo, &generation.MockGenerator{})

	result, err := svc.Translate(context.Background(), "jordan@example.com", entry.ID, "Spanish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LanguageCode != "es" {
		t.Errorf("expected code es, got %s", result.LanguageCode)
	}
	if result.TranslatedExplanation != "[es] a viral infection" {
		t.Errorf("unexpected translation: %q", result.TranslatedExplanation)
	}
	if result.Explanation != "a viral infection" {
		t.Error("original text must be returned alongside the translation")
	}
	if len(tl.Calls()) != 2 {
		t.Errorf("expected 2 translator calls, got %d", len(tl.Calls()))
	}
}

func TestTranslate_UnsupportedLanguageBeforeRemoteCall(t *testing.T) {
	repo := newMockRepo()
	entry := &SymptomEntry{Email: "jordan@example.com", Explanation: "x", Recommendation: "y"}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	svc, _, tl := newTestService(repo, &generation.MockGenerator{})

	_, err := svc.Translate(context.Background(), "jordan@example.com", entry.ID, "German")
	if !errors.Is(err, translate.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if len(tl.Calls()) != 0 {
		t.Errorf("translator must not be invoked for unsupported languages, saw %d calls", len(tl.Calls()))
	}
}

func TestTranslate_EntryScopedToCaller(t *testing.T) {
	repo := newMockRepo()
	entry := &SymptomEntry{Email: "someone-else@example.com", Explanation: "x", Recommendation: "y"}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	svc, _, _ := newTestService(repo, &generation.MockGenerator{})

	_, err := svc.Translate(context.Background(), "jordan@example.com", entry.ID, "French")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another caller's entry, got %v", err)
	}
}
