package patient

import (
	"context"
)

type Repository interface {
	Upsert(ctx context.Context, p *Patient) error
	GetByEmail(ctx context.Context, email string) (*Patient, error)
}
