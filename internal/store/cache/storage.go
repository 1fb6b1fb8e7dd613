package cache

import (
	"context"

	"github.com/lmercado/raster-service/internal/store"
	"github.com/redis/go-redis/v9"
)

type Storage struct {
	Images interface {
		Get(context.Context, int64) (*store.Image, error)
		Set(context.Context, *store.Image) error
		Delete(context.Context, int64)
	}
}

func NewRedisStorage(rdb *redis.Client) Storage {
	return Storage{
		Images: &ImageStore{rdb: rdb},
	}
}

func NewRedisClient(addr, pw string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pw,
		DB:       db,
	})
}
