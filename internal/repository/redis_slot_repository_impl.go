package repository

import (
	"context"
	"errors"

	domainRepo "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisSlotKeyPrefix namespaces slot keys inside a shared Redis database
const RedisSlotKeyPrefix = "pethealth:slot:"

type redisSlotRepository struct {
	client *redis.Client
}

func NewRedisSlotRepository(client *redis.Client) domainRepo.SlotRepository {
	return &redisSlotRepository{client: client}
}

func (r *redisSlotRepository) Read(ctx context.Context, slot string) ([]byte, error) {
	data, err := r.client.Get(ctx, RedisSlotKeyPrefix+slot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Write stores the slot without expiry; slots are the system of record.
func (r *redisSlotRepository) Write(ctx context.Context, slot string, data []byte) error {
	return r.client.Set(ctx, RedisSlotKeyPrefix+slot, data, 0).Err()
}
