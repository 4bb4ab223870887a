package emergency

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const eventCols = `id, email, status, contacts_alerted, created_at`

func (r *repoPG) scanEvent(row pgx.Row) (*EmergencyEvent, error) {
	var e EmergencyEvent
	err := row.Scan(&e.ID, &e.Email, &e.Status, &e.ContactsAlerted, &e.CreatedAt)
	return &e, err
}

func (r *repoPG) Create(ctx context.Context, e *EmergencyEvent) error {
	e.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO emergency_event (id, email, status, contacts_alerted)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		e.ID, e.Email, e.Status, e.ContactsAlerted).Scan(&e.CreatedAt)
}

func (r *repoPG) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*EmergencyEvent, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM emergency_event WHERE email = $1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventCols+` FROM emergency_event WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*EmergencyEvent
	for rows.Next() {
		e, err := r.scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, nil
}
