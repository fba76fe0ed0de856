package repository

import (
	"context"
	"database/sql"
	"strings"
)

// NotificationRepo handles notifications.
type NotificationRepo struct {
	db *sql.DB
}

func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (r *NotificationRepo) Insert(ctx context.Context, n Notification) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO notifications(id, subject, body, read, created_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, n.ID, n.Subject, n.Body, n.Read)
	return err
}

func (r *NotificationRepo) List(ctx context.Context) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, subject, body, read, created_at FROM notifications ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Subject, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flags the given notifications as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read=1 WHERE id IN (?`+strings.Repeat(",?", len(ids)-1)+`)`,
		args...)
	return err
}

func (r *NotificationRepo) UnreadCount(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE read=0`).Scan(&n)
	return n, err
}
