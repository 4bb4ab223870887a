package insights

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) SeverityPoints(ctx context.Context, email string) ([]Point, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT created_at, severity FROM symptom_entry WHERE email = $1 ORDER BY created_at ASC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var points []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.T, &p.Severity); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
