package identity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Account maps to the account table. PasswordHash never leaves the server.
type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
