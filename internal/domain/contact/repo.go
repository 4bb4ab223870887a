package contact

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	ListByEmail(ctx context.Context, email string) ([]*Contact, error)
}
