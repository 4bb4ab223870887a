// Package notification provides the simulated emergency-alert channel with
// template rendering, in-memory delivery records, and test doubles. Alerts are
// never sent to a real carrier; the log sender records what would have gone
// out.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// Alert
// ---------------------------------------------------------------------------

// Alert represents a single outbound emergency alert.
type Alert struct {
	ID        string     `json:"id"`
	Recipient string     `json:"recipient"`
	Phone     string     `json:"phone"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// ---------------------------------------------------------------------------
// Sender Interface
// ---------------------------------------------------------------------------

// AlertSender is the interface for delivering an alert to a single contact.
type AlertSender interface {
	SendAlert(ctx context.Context, recipient, phone, body string) error
}

// LogAlertSender is the simulated delivery channel. Every alert is written to
// the structured log instead of a carrier.
type LogAlertSender struct {
	log zerolog.Logger
}

// NewLogAlertSender creates a LogAlertSender writing to the given logger.
func NewLogAlertSender(log zerolog.Logger) *LogAlertSender {
	return &LogAlertSender{log: log}
}

// SendAlert records the alert in the log and always succeeds.
func (s *LogAlertSender) SendAlert(_ context.Context, recipient, phone, body string) error {
	s.log.Info().
		Str("recipient", recipient).
		Str("phone", phone).
		Str("body", body).
		Msg("simulated emergency alert dispatched")
	return nil
}

// ---------------------------------------------------------------------------
// Template Engine
// ---------------------------------------------------------------------------

// Template defines a reusable alert message template.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Body string `json:"body"`
}

// TemplateEngine manages alert templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in templates pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{
		templates: make(map[string]*Template),
	}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:   "emergency-alert",
			Name: "Emergency Alert",
			Body: "EMERGENCY: {{patient_name}} ({{patient_email}}) has activated an emergency alert at {{time}}. Please check on them immediately.",
		},
		{
			ID:   "severity-warning",
			Name: "Severity Warning",
			Body: "{{patient_name}} reported symptoms rated severity {{severity}}/5: {{symptoms}}. A check-in is recommended.",
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are left
// as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (string, error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %q not found", templateID)
	}

	body := t.Body
	for k, v := range data {
		body = strings.ReplaceAll(body, "{{"+k+"}}", v)
	}
	return body, nil
}

// ---------------------------------------------------------------------------
// Mock Sender (test double)
// ---------------------------------------------------------------------------

// AlertCall records a single call to SendAlert.
type AlertCall struct {
	Recipient string
	Phone     string
	Body      string
}

// MockAlertSender is a test double for AlertSender.
type MockAlertSender struct {
	mu         sync.Mutex
	calls      []AlertCall
	ShouldFail bool
	FailError  string
}

// SendAlert records the call and optionally returns an error.
func (m *MockAlertSender) SendAlert(_ context.Context, recipient, phone, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, AlertCall{Recipient: recipient, Phone: phone, Body: body})
	if m.ShouldFail {
		return errors.New(m.FailError)
	}
	return nil
}

// Calls returns a copy of recorded alert calls.
func (m *MockAlertSender) Calls() []AlertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]AlertCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// ---------------------------------------------------------------------------
// Alert Dispatcher
// ---------------------------------------------------------------------------

// Dispatcher sends templated alerts through a sender and keeps in-memory
// delivery records for inspection.
type Dispatcher struct {
	sender    AlertSender
	templates *TemplateEngine
	mu        sync.RWMutex
	alerts    map[string]*Alert
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(sender AlertSender, tpl *TemplateEngine) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		templates: tpl,
		alerts:    make(map[string]*Alert),
	}
}

// Dispatch renders the template and sends an alert to a single contact. The
// delivery record is retained either way so the caller can see the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, templateID string, data map[string]string, recipient, phone string) (*Alert, error) {
	body, err := d.templates.Render(templateID, data)
	if err != nil {
		return nil, fmt.Errorf("render alert template: %w", err)
	}

	a := &Alert{
		ID:        uuid.New().String(),
		Recipient: recipient,
		Phone:     phone,
		Body:      body,
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}

	sendErr := d.sender.SendAlert(ctx, recipient, phone, body)
	if sendErr != nil {
		a.Status = "failed"
		a.Error = sendErr.Error()
	} else {
		a.Status = "sent"
		sentAt := time.Now().UTC()
		a.SentAt = &sentAt
	}

	d.mu.Lock()
	d.alerts[a.ID] = a
	d.mu.Unlock()

	if sendErr != nil {
		return a, sendErr
	}
	return a, nil
}

// Get retrieves a delivery record by ID.
func (d *Dispatcher) Get(id string) (*Alert, error) {
	d.mu.RLock()
	a, ok := d.alerts[id]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("alert %q not found", id)
	}
	return a, nil
}

// Stats returns counts of delivery records grouped by status.
func (d *Dispatcher) Stats() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := make(map[string]int)
	for _, a := range d.alerts {
		stats[a.Status]++
	}
	return stats
}
