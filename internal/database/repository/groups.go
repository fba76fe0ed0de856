package repository

import (
	"context"
	"database/sql"
)

// GroupRepo handles access groups and their resource assignments.
type GroupRepo struct {
	db *sql.DB
}

func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

func (r *GroupRepo) Upsert(ctx context.Context, g Group) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO groups(id, name, description) VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET name=excluded.name, description=excluded.description;
	`, g.ID, g.Name, g.Description)
	return err
}

func (r *GroupRepo) List(ctx context.Context) ([]Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Group
	for rows.Next() {
		var g Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// AssignResource replaces the groups a resource belongs to.
func (r *GroupRepo) AssignResource(ctx context.Context, resourceID string, groupIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_members WHERE resource_id=?`, resourceID); err != nil {
		return err
	}
	for _, gid := range groupIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO group_members(group_id, resource_id) VALUES (?, ?)`, gid, resourceID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GroupsForResource lists group ids the resource is assigned to.
func (r *GroupRepo) GroupsForResource(ctx context.Context, resourceID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id FROM group_members WHERE resource_id=? ORDER BY group_id`, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
