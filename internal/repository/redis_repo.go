package repository

import (
	"context"
	"errors"

	"go-inventory-tracker/internal/model"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client *redis.Client
	key    string
}

// NewRedisRepo stores the collection as a plain string value under key.
func NewRedisRepo(client *redis.Client, key string) ProductStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &redisRepo{client: client, key: key}
}

func (r *redisRepo) Load(ctx context.Context) ([]model.Product, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, unavailable("load", err)
	}
	return decodeProducts(data)
}

func (r *redisRepo) Save(ctx context.Context, products []model.Product) error {
	data, err := encodeProducts(products)
	if err != nil {
		return err
	}
	// No expiry: the blob is the durable copy.
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return unavailable("save", err)
	}
	return nil
}
