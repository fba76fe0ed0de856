package repository

import (
	"context"
	"database/sql"
)

// CompartmentRepo handles topology compartments.
type CompartmentRepo struct {
	db *sql.DB
}

func NewCompartmentRepo(db *sql.DB) *CompartmentRepo {
	return &CompartmentRepo{db: db}
}

func (r *CompartmentRepo) Upsert(ctx context.Context, c Compartment) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO compartments(id, name, x, y, width, height, metadata, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 x=excluded.x,
	 y=excluded.y,
	 width=excluded.width,
	 height=excluded.height,
	 metadata=excluded.metadata,
	 updated_at=CURRENT_TIMESTAMP;
	`, c.ID, c.Name, c.X, c.Y, c.Width, c.Height, c.Metadata)
	return err
}

// SetGeometry persists one compartment's rectangle after a move or resize.
func (r *CompartmentRepo) SetGeometry(ctx context.Context, id string, x, y, width, height int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE compartments SET x=?, y=?, width=?, height=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		x, y, width, height, id)
	return err
}

// SetMetadata stores the compartment's metadata JSON document.
func (r *CompartmentRepo) SetMetadata(ctx context.Context, id, metadata string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE compartments SET metadata=?, updated_at=CURRENT_TIMESTAMP WHERE id=?`,
		metadata, id)
	return err
}

func (r *CompartmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM compartments WHERE id=?`, id)
	return err
}

func (r *CompartmentRepo) List(ctx context.Context) ([]Compartment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, x, y, width, height, metadata, updated_at FROM compartments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Compartment
	for rows.Next() {
		var c Compartment
		if err := rows.Scan(&c.ID, &c.Name, &c.X, &c.Y, &c.Width, &c.Height, &c.Metadata, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CompartmentRepo) Get(ctx context.Context, id string) (Compartment, error) {
	var c Compartment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, x, y, width, height, metadata, updated_at FROM compartments WHERE id=?`, id).
		Scan(&c.ID, &c.Name, &c.X, &c.Y, &c.Width, &c.Height, &c.Metadata, &c.UpdatedAt)
	return c, err
}
