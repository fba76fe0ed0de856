package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ApprovalRepo handles approval requests.
type ApprovalRepo struct {
	db *sql.DB
}

func NewApprovalRepo(db *sql.DB) *ApprovalRepo {
	return &ApprovalRepo{db: db}
}

func (r *ApprovalRepo) Insert(ctx context.Context, a Approval) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO approvals(id, title, requester, resource, state, created_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, a.ID, a.Title, a.Requester, a.Resource, a.State)
	return err
}

// ListPending returns approvals still awaiting a decision, oldest first.
func (r *ApprovalRepo) ListPending(ctx context.Context) ([]Approval, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, requester, resource, state, created_at
		 FROM approvals WHERE state=? ORDER BY created_at`, ApprovalPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Approval
	for rows.Next() {
		var a Approval
		if err := rows.Scan(&a.ID, &a.Title, &a.Requester, &a.Resource, &a.State, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Decide moves the given approvals to state, in one statement.
func (r *ApprovalRepo) Decide(ctx context.Context, ids []string, state string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if state != ApprovalApproved && state != ApprovalRejected {
		return 0, fmt.Errorf("invalid approval state %q", state)
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, state)
	for _, id := range ids {
		args = append(args, id)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE approvals SET state=? WHERE id IN (?`+strings.Repeat(",?", len(ids)-1)+`) AND state='pending'`,
		args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
