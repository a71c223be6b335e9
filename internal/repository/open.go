package repository

import (
	"fmt"

	"go-inventory-tracker/internal/config"
	"go-inventory-tracker/pkg/database"

	"gorm.io/gorm"
)

// OpenStore connects the backend named by cfg.StoreDriver. The returned
// close func releases its connection.
func OpenStore(cfg *config.Config) (ProductStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryRepo(), func() error { return nil }, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, unavailable("open", err)
		}
		return NewSQLRepo(db, cfg.StoreKey), db.Close, nil

	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, unavailable("open", err)
		}
		return openGormStore(db, cfg.StoreKey)

	case config.DriverRedis:
		client, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, unavailable("open", err)
		}
		return NewRedisRepo(client, cfg.StoreKey), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// openGormStore migrates db and wraps it as a store. A failed migration
// closes the pool; Migrate already reports ErrStoreUnavailable.
func openGormStore(db *gorm.DB, key string) (ProductStore, func() error, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, unavailable("open", err)
	}
	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return NewProductRepo(db, key), sqlDB.Close, nil
}
