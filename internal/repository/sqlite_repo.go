package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-inventory-tracker/internal/model"

	"github.com/jmoiron/sqlx"
)

type sqlRepo struct {
	db  *sqlx.DB
	key string
}

// NewSQLRepo returns a store over the kv_store table of an sqlx database.
// The table is created by database.OpenSQLite.
func NewSQLRepo(db *sqlx.DB, key string) ProductStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &sqlRepo{db: db, key: key}
}

func (r *sqlRepo) Load(ctx context.Context) ([]model.Product, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, r.key)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, unavailable("load", err)
	}
	return decodeProducts([]byte(value))
}

func (r *sqlRepo) Save(ctx context.Context, products []model.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO kv_store(key, value, updated_at)
		VALUES (:key, :value, :updated_at)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, KVEntry{Key: r.key, Value: string(data), UpdatedAt: time.Now().UTC()})
	if err != nil {
		return unavailable("save", err)
	}
	return nil
}
