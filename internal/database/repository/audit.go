package repository

import (
	"context"
	"database/sql"
)

// AuditRepo handles the audit event log.
type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Insert(ctx context.Context, e AuditEvent) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO audit_events(id, actor, action, resource, detail, occurred_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, e.ID, e.Actor, e.Action, e.Resource, e.Detail)
	return err
}

// ListRecent returns the newest events first, bounded by limit/offset for
// paging.
func (r *AuditRepo) ListRecent(ctx context.Context, limit, offset int) ([]AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, actor, action, resource, detail, occurred_at
		 FROM audit_events ORDER BY occurred_at DESC, id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AuditEvent
	for rows.Next() {
		var e AuditEvent
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Resource, &e.Detail, &e.OccurredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *AuditRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_events`).Scan(&n)
	return n, err
}
