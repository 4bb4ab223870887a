package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact maps to the contact table. Contacts are append-only; there is no
// update or delete path.
type Contact struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
