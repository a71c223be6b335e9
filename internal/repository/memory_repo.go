package repository

import (
	"context"
	"sync"

	"go-inventory-tracker/internal/model"
)

// MemoryRepo keeps the encoded blob in memory. Going through the codec keeps
// callers from sharing slices with the store, as with the durable backends.
type MemoryRepo struct {
	mu   sync.Mutex
	data []byte
	err  error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// FailWith makes every following Load and Save fail with err; nil restores it.
func (r *MemoryRepo) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *MemoryRepo) Load(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, unavailable("load", r.err)
	}
	return decodeProducts(r.data)
}

func (r *MemoryRepo) Save(ctx context.Context, products []model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return unavailable("save", r.err)
	}
	data, err := encodeProducts(products)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}
