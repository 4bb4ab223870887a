package symptom

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SymptomEntry maps to the symptom_entry table. Entries are append-only;
// nothing updates or deletes them after Analyze writes one.
type SymptomEntry struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	Symptoms       string    `db:"symptoms" json:"symptoms"`
	Explanation    string    `db:"explanation" json:"explanation"`
	Severity       int       `db:"severity" json:"severity"`
	Recommendation string    `db:"recommendation" json:"recommendation"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// AnalysisResult is what Analyze returns to the client: the stored entry plus
// the raw triage response and the human-readable severity label.
type AnalysisResult struct {
	Entry         *SymptomEntry `json:"entry"`
	RawTriage     string        `json:"raw_triage"`
	SeverityLabel string        `json:"severity_label"`
}

// TranslationResult pairs the stored texts with their translations.
type TranslationResult struct {
	EntryID                  uuid.UUID `json:"entry_id"`
	Language                 string    `json:"language"`
	LanguageCode             string    `json:"language_code"`
	Explanation              string    `json:"explanation"`
	Recommendation           string    `json:"recommendation"`
	TranslatedExplanation    string    `json:"translated_explanation"`
	TranslatedRecommendation string    `json:"translated_recommendation"`
}

var (
	ErrNotFound            = errors.New("symptom entry not found")
	ErrEmptySymptoms       = errors.New("symptoms are required")
	ErrGenerationFailed    = errors.New("symptom analysis is temporarily unavailable")
	ErrTranscriptionFailed = errors.New("transcription is temporarily unavailable")
)
