package repository

import (
	"context"
	"errors"
	"time"

	"go-inventory-tracker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductStore persists the whole product collection as one blob.
// Save replaces the previous value entirely.
type ProductStore interface {
	Load(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
}

// KVEntry is the single-row key/value table used by the SQL backends.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(100);primaryKey" db:"key"`
	Value     string    `gorm:"type:text;not null" db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_store"
}

type productRepo struct {
	db  *gorm.DB
	key string
}

// NewProductRepo returns a gorm backed store (PostgreSQL in production).
func NewProductRepo(db *gorm.DB, key string) ProductStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &productRepo{db: db, key: key}
}

// Migrate creates the key/value table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return unavailable("migrate", err)
	}
	return nil
}

func (r *productRepo) Load(ctx context.Context) ([]model.Product, error) {
	var entry KVEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", r.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, unavailable("load", err)
	}
	return decodeProducts([]byte(entry.Value))
}

func (r *productRepo) Save(ctx context.Context, products []model.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return err
	}

	entry := KVEntry{Key: r.key, Value: string(data), UpdatedAt: time.Now().UTC()}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return unavailable("save", err)
	}
	return nil
}
