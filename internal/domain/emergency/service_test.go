package emergency

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carebridge/carebridge/internal/domain/contact"
	"github.com/carebridge/carebridge/internal/domain/patient"
	"github.com/carebridge/carebridge/internal/platform/notification"
)

// -- Mocks --

type mockRepo struct {
	events []*EmergencyEvent
}

func (m *mockRepo) Create(_ context.Context, e *EmergencyEvent) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	m.events = append(m.events, e)
	return nil
}

func (m *mockRepo) ListByEmail(_ context.Context, email string, limit, offset int) ([]*EmergencyEvent, int, error) {
	var result []*EmergencyEvent
	for _, e := range m.events {
		if e.Email == email {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, len(result), nil
}

type mockContacts struct {
	contacts []*contact.Contact
}

func (m *mockContacts) List(_ context.Context, email string) ([]*contact.Contact, error) {
	var result []*contact.Contact
	for _, c := range m.contacts {
		if c.Email == email {
			result = append(result, c)
		}
	}
	return result, nil
}

type mockProfiles struct {
	profile *patient.Patient
}

func (m *mockProfiles) GetProfile(_ context.Context, email string) (*patient.Patient, error) {
	if m.profile == nil || m.profile.Email != email {
		return nil, patient.ErrNotFound
	}
	return m.profile, nil
}

func newTestService(repo *mockRepo, contacts *mockContacts, profiles *mockProfiles, sender notification.AlertSender) *Service {
	dispatcher := notification.NewDispatcher(sender, notification.NewTemplateEngine())
	return NewService(repo, contacts, profiles, dispatcher, zerolog.Nop())
}

// -- Tests --

func TestActivate_FansOutToAllContacts(t *testing.T) {
	repo := &mockRepo{}
	contacts := &mockContacts{contacts: []*contact.Contact{
		{Email: "jordan@example.com", Name: "Sam Ortiz", Phone: "+15550001111"},
		{Email: "jordan@example.com", Name: "Alex Kim", Phone: "+15550002222"},
		{Email: "other@example.com", Name: "Not Mine", Phone: "+15550009999"},
	}}
	profiles := &mockProfiles{profile: &patient.Patient{Email: "jordan@example.com", FullName: "Jordan Lee"}}
	sender := &notification.MockAlertSender{}
	svc := newTestService(repo, contacts, profiles, sender)

	result, err := svc.Activate(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := sender.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected one alert per contact (2), got %d", len(calls))
	}
	if !strings.Contains(calls[0].Body, "Jordan Lee") {
		t.Errorf("alert body should carry the patient name: %q", calls[0].Body)
	}

	if result.Event.ContactsAlerted != 2 {
		t.Errorf("expected contacts_alerted 2, got %d", result.Event.ContactsAlerted)
	}
	if result.Event.Status != StatusActivated {
		t.Errorf("unexpected status: %s", result.Event.Status)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected exactly one event per press, got %d", len(repo.events))
	}
}

func TestActivate_NoContacts(t *testing.T) {
	repo := &mockRepo{}
	sender := &notification.MockAlertSender{}
	svc := newTestService(repo, &mockContacts{}, &mockProfiles{}, sender)

	result, err := svc.Activate(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("activation with no contacts must still succeed: %v", err)
	}
	if len(sender.Calls()) != 0 {
		t.Errorf("expected 0 alerts, got %d", len(sender.Calls()))
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(repo.events))
	}
	if result.Event.ContactsAlerted != 0 {
		t.Errorf("expected contacts_alerted 0, got %d", result.Event.ContactsAlerted)
	}
}

func TestActivate_EveryPressAppendsEvent(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockContacts{}, &mockProfiles{}, &notification.MockAlertSender{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Activate(context.Background(), "jordan@example.com"); err != nil {
			t.Fatalf("press %d: %v", i, err)
		}
	}
	if len(repo.events) != 3 {
		t.Errorf("expected 3 events for 3 presses, got %d", len(repo.events))
	}
}

func TestActivate_NoProfileFallsBackToEmail(t *testing.T) {
	repo := &mockRepo{}
	contacts := &mockContacts{contacts: []*contact.Contact{
		{Email: "jordan@example.com", Name: "Sam Ortiz", Phone: "+15550001111"},
	}}
	sender := &notification.MockAlertSender{}
	svc := newTestService(repo, contacts, &mockProfiles{}, sender)

	if _, err := svc.Activate(context.Background(), "jordan@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := sender.Calls()
	if len(calls) != 1 || !strings.Contains(calls[0].Body, "jordan@example.com") {
		t.Errorf("alert should identify the patient by email when no profile exists: %+v", calls)
	}
}

func TestActivate_DeliveryFailureStillRecordsEvent(t *testing.T) {
	repo := &mockRepo{}
	contacts := &mockContacts{contacts: []*contact.Contact{
		{Email: "jordan@example.com", Name: "Sam Ortiz", Phone: "+15550001111"},
	}}
	sender := &notification.MockAlertSender{ShouldFail: true, FailError: "carrier down"}
	svc := newTestService(repo, contacts, &mockProfiles{}, sender)

	result, err := svc.Activate(context.Background(), "jordan@example.com")
	if err != nil {
		t.Fatalf("delivery failure must not fail the activation: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected the event to be appended, got %d", len(repo.events))
	}
	if len(result.Alerts) != 1 || result.Alerts[0].Status != "failed" {
		t.Errorf("expected a failed delivery record, got %+v", result.Alerts)
	}
}

func TestListEvents(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo, &mockContacts{}, &mockProfiles{}, &notification.MockAlertSender{})

	svc.Activate(context.Background(), "jordan@example.com")
	svc.Activate(context.Background(), "other@example.com")

	items, total, err := svc.ListEvents(context.Background(), "jordan@example.com", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Errorf("expected only the caller's events, got %d", total)
	}
}
