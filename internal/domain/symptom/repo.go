package symptom

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *SymptomEntry) error
	GetByID(ctx context.Context, email string, id uuid.UUID) (*SymptomEntry, error)
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*SymptomEntry, int, error)
}
