package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domainRepo "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"
)

type sqliteSlotRepository struct {
	db *sql.DB
}

// NewSQLiteSlotRepository stores slots in the `slots` table created by
// database.NewSQLiteConnection.
func NewSQLiteSlotRepository(db *sql.DB) domainRepo.SlotRepository {
	return &sqliteSlotRepository{db: db}
}

func (r *sqliteSlotRepository) Read(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select slot %s: %w", slot, err)
	}
	return payload, nil
}

func (r *sqliteSlotRepository) Write(ctx context.Context, slot string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`, slot, data)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", slot, err)
	}
	return nil
}
