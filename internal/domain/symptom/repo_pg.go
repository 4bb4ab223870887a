package symptom

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const entryCols = `id, email, symptoms, explanation, severity, recommendation, created_at`

func (r *repoPG) scanEntry(row pgx.Row) (*SymptomEntry, error) {
	var e SymptomEntry
	err := row.Scan(&e.ID, &e.Email, &e.Symptoms, &e.Explanation, &e.Severity, &e.Recommendation, &e.CreatedAt)
	return &e, err
}

func (r *repoPG) Create(ctx context.Context, e *SymptomEntry) error {
	e.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO symptom_entry (id, email, symptoms, explanation, severity, recommendation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		e.ID, e.Email, e.Symptoms, e.Explanation, e.Severity, e.Recommendation).Scan(&e.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, email string, id uuid.UUID) (*SymptomEntry, error) {
	e, err := r.scanEntry(r.pool.QueryRow(ctx,
		`SELECT `+entryCols+` FROM symptom_entry WHERE id = $1 AND email = $2`, id, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *repoPG) ListByEmail(ctx context.Context, email string, limit, offset int) ([]*SymptomEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM symptom_entry WHERE email = $1`, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+entryCols+` FROM symptom_entry WHERE email = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		email, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*SymptomEntry
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, nil
}
