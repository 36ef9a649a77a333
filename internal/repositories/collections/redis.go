package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed collection repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dderr.InvalidArgument("redis client is required")
	}

	return &redisRepo{
		client: cfg.Client,
	}, nil
}

func collectionKey(ownerID string) string {
	return fmt.Sprintf("collection:%s", ownerID)
}

// Create stores a new player collection
func (r *redisRepo) Create(ctx context.Context, collection *entities.PlayerCollection) error {
	if collection == nil {
		return dderr.InvalidArgument("collection cannot be nil")
	}
	if collection.OwnerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	data, err := json.Marshal(collection)
	if err != nil {
		return dderr.Wrap(err, "failed to marshal collection")
	}

	created, err := r.client.SetNX(ctx, collectionKey(collection.OwnerID), data, 0).Result()
	if err != nil {
		return dderr.Wrapf(err, "failed to store collection for owner '%s'", collection.OwnerID)
	}
	if !created {
		return dderr.AlreadyExistsf("collection for owner '%s' already exists", collection.OwnerID).
			WithMeta("owner_id", collection.OwnerID)
	}

	return nil
}

// Get retrieves a player collection by owner ID
func (r *redisRepo) Get(ctx context.Context, ownerID string) (*entities.PlayerCollection, error) {
	if ownerID == "" {
		return nil, dderr.InvalidArgument("owner ID is required")
	}

	data, err := r.client.Get(ctx, collectionKey(ownerID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dderr.NotFoundf("collection for owner '%s' not found", ownerID).
			WithMeta("owner_id", ownerID)
	}
	if err != nil {
		return nil, dderr.Wrapf(err, "failed to get collection for owner '%s'", ownerID)
	}

	var collection entities.PlayerCollection
	if err := json.Unmarshal([]byte(data), &collection); err != nil {
		return nil, dderr.Wrapf(err, "failed to unmarshal collection for owner '%s'", ownerID)
	}

	return &collection, nil
}

// GetByOwners retrieves collections for several owners in parallel
func (r *redisRepo) GetByOwners(ctx context.Context, ownerIDs []string) ([]*entities.PlayerCollection, error) {
	collections := make([]*entities.PlayerCollection, len(ownerIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ownerID := range ownerIDs {
		i, ownerID := i, ownerID
		g.Go(func() error {
			collection, err := r.Get(ctx, ownerID)
			if err != nil {
				return err
			}
			collections[i] = collection
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collections, nil
}

// Update persists a modified collection with a compare-and-set on Version,
// implemented as a WATCH transaction so a concurrent writer aborts us instead
// of being silently overwritten
func (r *redisRepo) Update(ctx context.Context, collection *entities.PlayerCollection) error {
	if collection == nil {
		return dderr.InvalidArgument("collection cannot be nil")
	}
	if collection.OwnerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	key := collectionKey(collection.OwnerID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return dderr.NotFoundf("collection for owner '%s' not found", collection.OwnerID).
				WithMeta("owner_id", collection.OwnerID)
		}
		if err != nil {
			return dderr.Wrapf(err, "failed to get collection for owner '%s'", collection.OwnerID)
		}

		var current entities.PlayerCollection
		if err := json.Unmarshal([]byte(stored), &current); err != nil {
			return dderr.Wrapf(err, "failed to unmarshal collection for owner '%s'", collection.OwnerID)
		}

		if current.Version != collection.Version {
			return dderr.Conflictf("collection for owner '%s' changed underneath us (stored version %d, ours %d)",
				collection.OwnerID, current.Version, collection.Version).
				WithMeta("owner_id", collection.OwnerID).
				WithMeta("stored_version", current.Version)
		}

		next := collection.Clone()
		next.Version++
		next.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(next)
		if err != nil {
			return dderr.Wrap(err, "failed to marshal collection")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		collection.Version = next.Version
		collection.UpdatedAt = next.UpdatedAt
		return nil
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return dderr.Conflictf("collection for owner '%s' changed underneath us", collection.OwnerID).
			WithMeta("owner_id", collection.OwnerID)
	}
	return err
}

// Delete removes a player collection
func (r *redisRepo) Delete(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return dderr.InvalidArgument("owner ID is required")
	}

	deleted, err := r.client.Del(ctx, collectionKey(ownerID)).Result()
	if err != nil {
		return dderr.Wrapf(err, "failed to delete collection for owner '%s'", ownerID)
	}
	if deleted == 0 {
		return dderr.NotFoundf("collection for owner '%s' not found", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return nil
}
