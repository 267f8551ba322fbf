package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/domain/repository"
	"github.com/bnema/sidetabs/internal/logging"
)

const (
	getWindowValueQuery = `SELECT value FROM window_values WHERE window_id = ? AND key = ?`

	upsertWindowValueQuery = `INSERT INTO window_values (window_id, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (window_id, key) DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at`

	deleteWindowValueQuery = `DELETE FROM window_values WHERE window_id = ? AND key = ?`

	listWindowsQuery = `SELECT DISTINCT window_id FROM window_values ORDER BY window_id`
)

type windowValueRepo struct {
	db *sql.DB
}

// NewWindowValueRepository creates a new SQLite-backed window value store.
func NewWindowValueRepository(db *sql.DB) repository.WindowValueRepository {
	return &windowValueRepo{db: db}
}

func (r *windowValueRepo) Get(ctx context.Context, windowID entity.WindowID, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getWindowValueQuery, int64(windowID), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get window value %q: %w", key, err)
	}
	return value, true, nil
}

func (r *windowValueRepo) Set(ctx context.Context, windowID entity.WindowID, key, value string) error {
	if !windowID.IsConcrete() {
		return entity.InvalidArgumentf("window id %d", windowID)
	}
	if key == "" {
		return entity.InvalidArgumentf("window value key is required")
	}

	logging.FromContext(ctx).Debug().
		Int("window_id", int(windowID)).
		Str("key", key).
		Int("bytes", len(value)).
		Msg("saving window value")

	if _, err := r.db.ExecContext(ctx, upsertWindowValueQuery, int64(windowID), key, value); err != nil {
		return fmt.Errorf("set window value %q: %w", key, err)
	}
	return nil
}

func (r *windowValueRepo) Delete(ctx context.Context, windowID entity.WindowID, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteWindowValueQuery, int64(windowID), key); err != nil {
		return fmt.Errorf("delete window value %q: %w", key, err)
	}
	return nil
}

func (r *windowValueRepo) ListWindows(ctx context.Context) ([]entity.WindowID, error) {
	rows, err := r.db.QueryContext(ctx, listWindowsQuery)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []entity.WindowID
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan window id: %w", err)
		}
		ids = append(ids, entity.WindowID(id))
	}
	return ids, rows.Err()
}
