package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hpungsan/tabstash/internal/tab"
)

// Backend adapts a *sql.DB to the capture store's persistence interface.
type Backend struct {
	db *sql.DB
}

// NewBackend wraps an initialized database.
func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// LoadTabs returns the stored collection ordered front = newest.
func (b *Backend) LoadTabs(ctx context.Context) ([]tab.Tab, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, url, title, favicon_url, captured_at
		FROM tabs
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load tabs: %w", err)
	}
	defer rows.Close()

	var tabs []tab.Tab
	for rows.Next() {
		var t tab.Tab
		if err := rows.Scan(&t.ID, &t.URL, &t.Title, &t.FaviconURL, &t.CapturedAt); err != nil {
			return nil, fmt.Errorf("scan tab: %w", err)
		}
		tabs = append(tabs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load tabs: %w", err)
	}
	return tabs, nil
}

// SaveTabs replaces the stored collection in a single transaction, so the
// persisted list is always a complete snapshot or the previous one.
func (b *Backend) SaveTabs(ctx context.Context, tabs []tab.Tab) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save tabs: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tabs`); err != nil {
		return fmt.Errorf("save tabs: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tabs (id, url, title, favicon_url, position, captured_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save tabs: prepare: %w", err)
	}
	defer stmt.Close()

	for i, t := range tabs {
		if _, err := stmt.ExecContext(ctx, t.ID, t.URL, t.Title, t.FaviconURL, i, t.CapturedAt); err != nil {
			return fmt.Errorf("save tabs: insert %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save tabs: commit: %w", err)
	}
	return nil
}

// ProStatus returns the persisted entitlement flag. A missing row reads
// as the first-run default (off), though migration seeds it.
func (b *Backend) ProStatus(ctx context.Context) (bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'pro_status'`,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pro status: %w", err)
	}
	return value == "1", nil
}

// SetProStatus persists the entitlement flag.
func (b *Backend) SetProStatus(ctx context.Context, pro bool) error {
	value := "0"
	if pro {
		value = "1"
	}
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('pro_status', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, value)
	if err != nil {
		return fmt.Errorf("set pro status: %w", err)
	}
	return nil
}
