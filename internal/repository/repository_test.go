package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/pkg/database"
)

func sampleProducts() []model.Product {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return []model.Product{
		{ID: "b", Name: "Mouse Y", Category: "Periféricos", Quantity: 0, UnitPrice: 20, CreatedAt: created, LastMovement: created.Add(time.Hour)},
		{ID: "a", Name: "Teclado X", Category: "Teclados", Quantity: 3, UnitPrice: 150.5, CreatedAt: created, LastMovement: created},
	}
}

// exerciseStore runs the contract every backend must satisfy.
func exerciseStore(t *testing.T, store ProductStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty on first load", func(t *testing.T) {
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", got)
		}
	})

	t.Run("save then load keeps order and fields", func(t *testing.T) {
		want := sampleProducts()
		if err := store.Save(ctx, want); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d products, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].ID != want[i].ID || got[i].Name != want[i].Name || got[i].Category != want[i].Category ||
				got[i].Quantity != want[i].Quantity || got[i].UnitPrice != want[i].UnitPrice ||
				!got[i].CreatedAt.Equal(want[i].CreatedAt) || !got[i].LastMovement.Equal(want[i].LastMovement) {
				t.Fatalf("product %d: expected %+v, got %+v", i, want[i], got[i])
			}
		}
	})

	t.Run("save overwrites totally", func(t *testing.T) {
		if err := store.Save(ctx, sampleProducts()[:1]); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("expected only product b, got %+v", got)
		}
	})

	t.Run("save empty collection", func(t *testing.T) {
		if err := store.Save(ctx, nil); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty collection, got %+v", got)
		}
	})
}

func TestMemoryRepo(t *testing.T) {
	exerciseStore(t, NewMemoryRepo())
}

func TestMemoryRepo_FailWith(t *testing.T) {
	repo := NewMemoryRepo()
	repo.FailWith(errors.New("quota exceeded"))

	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable on load, got %v", err)
	}
	if err := repo.Save(context.Background(), sampleProducts()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable on save, got %v", err)
	}

	repo.FailWith(nil)
	if _, err := repo.Load(context.Background()); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
}

func TestMemoryRepo_DoesNotShareSlices(t *testing.T) {
	repo := NewMemoryRepo()
	products := sampleProducts()
	if err := repo.Save(context.Background(), products); err != nil {
		t.Fatal(err)
	}
	products[0].Name = "changed"

	got, _ := repo.Load(context.Background())
	if got[0].Name != "Mouse Y" {
		t.Fatalf("store was mutated through caller slice: %q", got[0].Name)
	}
}

func TestSQLRepo(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	exerciseStore(t, NewSQLRepo(db, ""))
}

func TestSQLRepo_KeysAreIsolated(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	a := NewSQLRepo(db, "a")
	b := NewSQLRepo(db, "b")
	if err := a.Save(ctx, sampleProducts()); err != nil {
		t.Fatal(err)
	}
	got, err := b.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected key b to be empty, got %d products", len(got))
	}
}

func TestSQLRepo_ClosedDB(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := NewSQLRepo(db, "")
	_ = db.Close()

	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if err := repo.Save(context.Background(), sampleProducts()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

// Integration tests skip unless REDIS_URL or DATABASE_URL is set.
func TestRedisRepoIntegration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	client, err := database.ConnectRedis(url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	key := "test_" + time.Now().Format("20060102150405.000000")
	defer client.Del(context.Background(), key)
	exerciseStore(t, NewRedisRepo(client, key))
}

func TestProductRepoIntegration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}
	db, err := database.ConnectPostgres(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	key := "test_" + time.Now().Format("20060102150405.000000")
	defer db.Delete(&KVEntry{}, "key = ?", key)
	exerciseStore(t, NewProductRepo(db, key))
}
