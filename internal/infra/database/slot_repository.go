package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pinkguard_bot/internal/domain/slot"
)

// SlotRepository implements slot.Repository on the kv_slots table.
type SlotRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewSlotRepository(db *sql.DB, d Dialect) *SlotRepository {
	return &SlotRepository{db: db, dialect: d}
}

func (r *SlotRepository) Get(ctx context.Context, ownerID int64, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.dialect.get, ownerID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", slot.ErrSlotNotFound
		}
		return "", fmt.Errorf("error getting slot %q: %w", key, err)
	}
	return value, nil
}

func (r *SlotRepository) Put(ctx context.Context, ownerID int64, key string, value string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.put, ownerID, key, value); err != nil {
		return fmt.Errorf("error writing slot %q: %w", key, err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, ownerID int64, key string) error {
	if _, err := r.db.ExecContext(ctx, r.dialect.del, ownerID, key); err != nil {
		return fmt.Errorf("error deleting slot %q: %w", key, err)
	}
	return nil
}

func (r *SlotRepository) ListOwners(ctx context.Context, key string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.listOwners, key)
	if err != nil {
		return nil, fmt.Errorf("error listing owners of slot %q: %w", key, err)
	}
	defer rows.Close()

	owners := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning slot owner: %w", err)
		}
		owners = append(owners, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot owners: %w", err)
	}
	return owners, nil
}

var _ slot.Repository = (*SlotRepository)(nil)
