package inventory

import (
	"context"
	"fmt"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

// Key pattern: inventory:{owner_id}, a hash of item to count
const inventoryKeyPrefix = "inventory:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	raw, err := r.client.HGetAll(ctx, GetKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get inventory for %s", input.OwnerID)
	}

	items := make(map[string]int, len(raw))
	for item, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "corrupt count for %s in inventory of %s", item, input.OwnerID)
		}
		items[item] = n
	}

	return &GetOutput{
		OwnerID: input.OwnerID,
		Items:   items,
	}, nil
}

func (r *redisRepository) Add(ctx context.Context, input *AddInput) (*AddOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateChange(input.OwnerID, input.Item, input.Count); err != nil {
		return nil, err
	}

	n, err := r.client.HIncrBy(ctx, GetKey(input.OwnerID), input.Item, int64(input.Count)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add %s to inventory of %s", input.Item, input.OwnerID)
	}

	return &AddOutput{Count: int(n)}, nil
}

func (r *redisRepository) Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateChange(input.OwnerID, input.Item, input.Count); err != nil {
		return nil, err
	}

	key := GetKey(input.OwnerID)
	var left int
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		have, err := tx.HGet(ctx, key, input.Item).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return errors.Wrapf(err, "failed to read %s from inventory of %s", input.Item, input.OwnerID)
		}
		if have < input.Count {
			return errors.FailedPreconditionf("%s holds %d %s, need %d", input.OwnerID, have, input.Item, input.Count)
		}

		left = have - input.Count
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if left == 0 {
				pipe.HDel(ctx, key, input.Item)
			} else {
				pipe.HSet(ctx, key, input.Item, left)
			}
			return nil
		})
		return err
	}, key)

	var domainErr *errors.Error
	switch {
	case err == nil:
		return &RemoveOutput{Count: left}, nil
	case errors.Is(err, redis.TxFailedErr):
		return nil, errors.Aborted(fmt.Sprintf("inventory of %s changed concurrently", input.OwnerID))
	case errors.As(err, &domainErr):
		return nil, err
	default:
		return nil, errors.Wrapf(err, "failed to remove %s from inventory of %s", input.Item, input.OwnerID)
	}
}

// GetKey returns the Redis key for an owner's inventory
// Exposed for testing purposes
func GetKey(ownerID string) string {
	return inventoryKeyPrefix + ownerID
}
