package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Association describes a many-to-many join table keyed by (OwnerColumn, TargetColumn).
// TargetTable is the table the target ids must exist in; unknown ids are skipped on Replace.
type Association struct {
	Table        string
	OwnerColumn  string
	TargetColumn string
	TargetTable  string
}

// Replace swaps the owner's associated ids for ids inside tx.
func (a Association) Replace(ctx context.Context, tx *sqlx.Tx, ownerID string, ids []string) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", a.Table, a.OwnerColumn)

	if _, err := tx.ExecContext(ctx, deleteQuery, ownerID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", a.Table, err)
	}

	return a.Add(ctx, tx, ownerID, ids)
}

// Add links ids to the owner inside tx, ignoring ids that are unknown or already linked.
func (a Association) Add(ctx context.Context, tx *sqlx.Tx, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) SELECT $1::uuid, t.id FROM %s t WHERE t.id::text = ANY($2) ON CONFLICT DO NOTHING",
		a.Table, a.OwnerColumn, a.TargetColumn, a.TargetTable,
	)

	if _, err := tx.ExecContext(ctx, query, ownerID, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to link %s: %w", a.Table, err)
	}

	return nil
}

// List returns the target ids linked to ownerID.
func (a Association) List(ctx context.Context, db sqlx.QueryerContext, ownerID string) ([]string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 ORDER BY %s", a.TargetColumn, a.Table, a.OwnerColumn, a.TargetColumn)

	ids := []string{}
	if err := sqlx.SelectContext(ctx, db, &ids, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.Table, err)
	}

	return ids, nil
}

// Remove unlinks a single target from the owner. Removing a missing link is not an error.
func (a Association) Remove(ctx context.Context, exec sqlx.ExecerContext, ownerID, targetID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = $2", a.Table, a.OwnerColumn, a.TargetColumn)

	if _, err := exec.ExecContext(ctx, query, ownerID, targetID); err != nil {
		return fmt.Errorf("failed to unlink %s: %w", a.Table, err)
	}

	return nil
}

// ListMany returns the target ids of every owner in ownerIDs, keyed by owner.
func (a Association) ListMany(ctx context.Context, db sqlx.QueryerContext, ownerIDs []string) (map[string][]string, error) {
	links := make(map[string][]string, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return links, nil
	}

	query := fmt.Sprintf(
		"SELECT %s AS owner, %s AS target FROM %s WHERE %s::text = ANY($1) ORDER BY %s",
		a.OwnerColumn, a.TargetColumn, a.Table, a.OwnerColumn, a.TargetColumn,
	)

	rows := []struct {
		Owner  string `db:"owner"`
		Target string `db:"target"`
	}{}
	if err := sqlx.SelectContext(ctx, db, &rows, query, pq.Array(ownerIDs)); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.Table, err)
	}

	for _, row := range rows {
		links[row.Owner] = append(links[row.Owner], row.Target)
	}

	return links, nil
}
