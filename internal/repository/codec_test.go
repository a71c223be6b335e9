package repository

import (
	"errors"
	"testing"
)

func TestDecodeProducts(t *testing.T) {
	t.Run("empty blob", func(t *testing.T) {
		got, err := decodeProducts(nil)
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %#v, %v", got, err)
		}
	})

	t.Run("json null", func(t *testing.T) {
		got, err := decodeProducts([]byte("null"))
		if err != nil || got == nil || len(got) != 0 {
			t.Fatalf("expected empty slice, got %#v, %v", got, err)
		}
	})

	t.Run("browser shaped record", func(t *testing.T) {
		blob := `[{"id":"0b6f","name":"Teclado X","category":"Teclados","quantity":3,"unitPrice":150.5,` +
			`"createdAt":"2024-05-01T10:00:00.000Z","lastMovement":"2024-05-02T11:30:00.000Z"}]`
		got, err := decodeProducts([]byte(blob))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 || got[0].ID != "0b6f" || got[0].UnitPrice != 150.5 {
			t.Fatalf("unexpected products: %+v", got)
		}
		if got[0].LastMovement.Hour() != 11 {
			t.Fatalf("lastMovement not parsed: %v", got[0].LastMovement)
		}
	})

	t.Run("missing lastMovement defaults to createdAt", func(t *testing.T) {
		blob := `[{"id":"x","name":"n","category":"c","quantity":1,"unitPrice":1,"createdAt":"2024-05-01T10:00:00Z"}]`
		got, err := decodeProducts([]byte(blob))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !got[0].LastMovement.Equal(got[0].CreatedAt) {
			t.Fatalf("expected lastMovement == createdAt, got %v", got[0].LastMovement)
		}
	})

	t.Run("negative quantity clamps", func(t *testing.T) {
		got, err := decodeProducts([]byte(`[{"id":"x","quantity":-4}]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got[0].Quantity != 0 {
			t.Fatalf("expected 0, got %d", got[0].Quantity)
		}
	})

	t.Run("missing id is corrupt", func(t *testing.T) {
		_, err := decodeProducts([]byte(`[{"name":"no id"}]`))
		if !errors.Is(err, ErrCorruptData) || !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrCorruptData, got %v", err)
		}
	})

	t.Run("invalid json is corrupt", func(t *testing.T) {
		_, err := decodeProducts([]byte(`{not json`))
		if !errors.Is(err, ErrCorruptData) {
			t.Fatalf("expected ErrCorruptData, got %v", err)
		}
	})
}

func TestEncodeProducts_NilIsEmptyArray(t *testing.T) {
	data, err := encodeProducts(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}
