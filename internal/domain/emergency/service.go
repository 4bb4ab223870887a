package emergency

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/carebridge/carebridge/internal/domain/contact"
	"github.com/carebridge/carebridge/internal/domain/patient"
	"github.com/carebridge/carebridge/internal/platform/notification"
)

// ContactSource lists the caller's emergency contacts.
type ContactSource interface {
	List(ctx context.Context, email string) ([]*contact.Contact, error)
}

// ProfileSource resolves the caller's display name for the alert body.
type ProfileSource interface {
	GetProfile(ctx context.Context, email string) (*patient.Patient, error)
}

type Service struct {
	repo       Repository
	contacts   ContactSource
	profiles   ProfileSource
	dispatcher *notification.Dispatcher
	log        zerolog.Logger
}

func NewService(repo Repository, contacts ContactSource, profiles ProfileSource, dispatcher *notification.Dispatcher, log zerolog.Logger) *Service {
	return &Service{repo: repo, contacts: contacts, profiles: profiles, dispatcher: dispatcher, log: log}
}

// Activate fans one alert out to every contact on file and appends exactly
// one event. Zero contacts still produces an event; a failed delivery is
// recorded on the alert but never blocks the rest of the fan-out or the
// event write. Every press creates a fresh event, there is no cooldown.
func (s *Service) Activate(ctx context.Context, email string) (*ActivationResult, error) {
	contacts, err := s.contacts.List(ctx, email)
	if err != nil {
		return nil, err
	}

	name := email
	if p, err := s.profiles.GetProfile(ctx, email); err == nil {
		name = p.FullName
	} else if !errors.Is(err, patient.ErrNotFound) {
		s.log.Warn().Err(err).Str("email", email).Msg("profile lookup failed, alerting with email")
	}

	data := map[string]string{
		"patient_name":  name,
		"patient_email": email,
		"time":          time.Now().UTC().Format(time.RFC3339),
	}

	alerts := make([]*notification.Alert, 0, len(contacts))
	for _, c := range contacts {
		a, err := s.dispatcher.Dispatch(ctx, "emergency-alert", data, c.Name, c.Phone)
		if err != nil {
			s.log.Error().Err(err).Str("contact", c.Name).Msg("alert delivery failed")
		}
		if a != nil {
			alerts = append(alerts, a)
		}
	}

	event := &EmergencyEvent{
		Email:           email,
		Status:          StatusActivated,
		ContactsAlerted: len(contacts),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	return &ActivationResult{Event: event, Alerts: alerts}, nil
}

// ListEvents returns the caller's activation history, newest first.
func (s *Service) ListEvents(ctx context.Context, email string, limit, offset int) ([]*EmergencyEvent, int, error) {
	return s.repo.ListByEmail(ctx, email, limit, offset)
}
