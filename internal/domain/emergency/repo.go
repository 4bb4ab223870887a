package emergency

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, e *EmergencyEvent) error
	ListByEmail(ctx context.Context, email string, limit, offset int) ([]*EmergencyEvent, int, error)
}
