package emergency

import (
	"time"

	"github.com/google/uuid"

	"github.com/carebridge/carebridge/internal/platform/notification"
)

// EmergencyEvent maps to the emergency_event table. One row is appended per
// activation, including activations with zero contacts on file.
type EmergencyEvent struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	Status          string    `db:"status" json:"status"`
	ContactsAlerted int       `db:"contacts_alerted" json:"contacts_alerted"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// StatusActivated is the only status the prototype records.
const StatusActivated = "activated"

// ActivationResult is returned to the client after a press: the appended
// event plus the per-contact delivery records.
type ActivationResult struct {
	Event  *EmergencyEvent       `json:"event"`
	Alerts []*notification.Alert `json:"alerts"`
}
