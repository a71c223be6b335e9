package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-inventory-tracker/internal/model"
)

// DefaultStoreKey is the key the whole product collection is stored under.
const DefaultStoreKey = "gestor_estoque_data"

var (
	// ErrStoreUnavailable wraps every read or write failure of a backend.
	ErrStoreUnavailable = errors.New("product store unavailable")

	// ErrCorruptData indicates a stored blob that cannot be turned back into products.
	ErrCorruptData = fmt.Errorf("%w: corrupt product data", ErrStoreUnavailable)
)

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

func encodeProducts(products []model.Product) ([]byte, error) {
	if products == nil {
		products = []model.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return nil, unavailable("encode", err)
	}
	return data, nil
}

// decodeProducts parses a stored blob. There is no schema version, so older
// records are normalised: a record without id is rejected, a missing
// lastMovement falls back to createdAt and a negative quantity becomes zero.
func decodeProducts(data []byte) ([]model.Product, error) {
	if len(data) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	if products == nil {
		return []model.Product{}, nil
	}

	for i := range products {
		p := &products[i]
		if p.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", ErrCorruptData, i)
		}
		if p.LastMovement.IsZero() {
			p.LastMovement = p.CreatedAt
		}
		if p.Quantity < 0 {
			p.Quantity = 0
		}
	}
	return products, nil
}
