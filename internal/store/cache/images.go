package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lmercado/raster-service/internal/store"
	"github.com/redis/go-redis/v9"
)

type ImageStore struct {
	rdb *redis.Client
}

const ImageExpTime = 15 * time.Minute

func (s *ImageStore) Get(ctx context.Context, imageID int64) (*store.Image, error) {
	if s.rdb == nil {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("image-%d", imageID)

	data, err := s.rdb.Get(ctx, cacheKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, err
	}

	var image store.Image
	if err := json.Unmarshal([]byte(data), &image); err != nil {
		return nil, err
	}

	return &image, nil
}

func (s *ImageStore) Set(ctx context.Context, image *store.Image) error {
	if s.rdb == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("image-%d", image.ID)

	data, err := json.Marshal(image)
	if err != nil {
		return err
	}

	return s.rdb.SetEx(ctx, cacheKey, data, ImageExpTime).Err()
}

func (s *ImageStore) Delete(ctx context.Context, imageID int64) {
	if s.rdb == nil {
		return
	}

	cacheKey := fmt.Sprintf("image-%d", imageID)

	s.rdb.Del(ctx, cacheKey)
}
