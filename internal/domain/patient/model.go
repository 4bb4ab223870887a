package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table. Exactly one profile exists per account
// email; Upsert replaces whatever was stored before.
type Patient struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	FullName       string    `db:"full_name" json:"full_name"`
	Age            *int      `db:"age" json:"age,omitempty"`
	Gender         *string   `db:"gender" json:"gender,omitempty"`
	MedicalHistory *string   `db:"medical_history" json:"medical_history,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	LastUpdated    time.Time `db:"last_updated" json:"last_updated"`
}

var ErrNotFound = errors.New("patient profile not found")
