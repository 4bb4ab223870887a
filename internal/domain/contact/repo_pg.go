package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const contactCols = `id, email, name, phone, created_at`

func (r *repoPG) scanContact(row pgx.Row) (*Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.CreatedAt)
	return &c, err
}

func (r *repoPG) Create(ctx context.Context, c *Contact) error {
	c.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO contact (id, email, name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		c.ID, c.Email, c.Name, c.Phone).Scan(&c.CreatedAt)
}

func (r *repoPG) ListByEmail(ctx context.Context, email string) ([]*Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactCols+` FROM contact WHERE email = $1 ORDER BY created_at ASC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Contact
	for rows.Next() {
		c, err := r.scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, nil
}
