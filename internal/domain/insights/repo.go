package insights

import (
	"context"
)

type Repository interface {
	SeverityPoints(ctx context.Context, email string) ([]Point, error)
}
