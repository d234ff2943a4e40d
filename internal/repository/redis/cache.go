package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	spaceCachePrefix     = "space:"
	defaultSpaceCacheTTL = 5 * time.Minute
	spaceCacheScanBatch  = 100

	// bumped by every invalidation; outside spaceCachePrefix so FlushAll keeps it
	spaceGenerationKey = "spacecache:generation"
)

// SpaceCache stores space aggregates as JSON
type SpaceCache struct {
	client *Client
	ttl    time.Duration
}

// NewSpaceCache creates a new space cache
func NewSpaceCache(client *Client, ttl time.Duration) *SpaceCache {
	if ttl <= 0 {
		ttl = defaultSpaceCacheTTL
	}
	return &SpaceCache{client: client, ttl: ttl}
}

func spaceKey(id int64) string {
	return spaceCachePrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached space, or nil on a miss
func (c *SpaceCache) Get(ctx context.Context, id int64) (*domain.Space, error) {
	data, err := c.client.rdb.Get(ctx, spaceKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read space cache: %w", err)
	}

	var space domain.Space
	if err := json.Unmarshal(data, &space); err != nil {
		return nil, fmt.Errorf("failed to unmarshal space: %w", err)
	}

	return &space, nil
}

// Generation returns the invalidation counter. A reader takes it before
// loading from the database and hands it to SetIfGeneration.
func (c *SpaceCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.rdb.Get(ctx, spaceGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// SetIfGeneration caches space only when no invalidation happened since gen
// was read, so a slow reader cannot restore a row a writer just replaced.
// It reports whether the space was stored.
func (c *SpaceCache) SetIfGeneration(ctx context.Context, space *domain.Space, gen int64) (bool, error) {
	data, err := json.Marshal(space)
	if err != nil {
		return false, fmt.Errorf("failed to marshal space: %w", err)
	}

	stored := false
	err = c.client.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, spaceGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, spaceKey(space.ID), data, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, spaceGenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to write space cache: %w", err)
	}
	return stored, nil
}

// Invalidate removes a cached space
func (c *SpaceCache) Invalidate(ctx context.Context, id int64) error {
	_, err := c.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, spaceGenerationKey)
		pipe.Del(ctx, spaceKey(id))
		return nil
	})
	return err
}

// FlushAll removes all cached spaces
func (c *SpaceCache) FlushAll(ctx context.Context) (int64, error) {
	if err := c.client.rdb.Incr(ctx, spaceGenerationKey).Err(); err != nil {
		return 0, fmt.Errorf("failed to bump space cache generation: %w", err)
	}

	pattern := spaceCachePrefix + "*"
	var cursor uint64
	var deleted int64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, spaceCacheScanBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			count, err := c.client.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += count
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}

// CachedSpaceRepository reads spaces through the cache. Cache failures are
// logged and never fail the request.
type CachedSpaceRepository struct {
	domain.SpaceRepository
	cache *SpaceCache
}

// NewCachedSpaceRepository decorates next with cache
func NewCachedSpaceRepository(next domain.SpaceRepository, cache *SpaceCache) *CachedSpaceRepository {
	return &CachedSpaceRepository{SpaceRepository: next, cache: cache}
}

func (r *CachedSpaceRepository) FindByID(ctx context.Context, id int64) (*domain.Space, error) {
	cached, err := r.cache.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("space_id", id).Msg("space cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	gen, genErr := r.cache.Generation(ctx)
	if genErr != nil {
		log.Warn().Err(genErr).Int64("space_id", id).Msg("space cache generation read failed")
	}

	space, err := r.SpaceRepository.FindByID(ctx, id)
	if err != nil || space == nil {
		return space, err
	}

	if genErr == nil {
		if _, err := r.cache.SetIfGeneration(ctx, space, gen); err != nil {
			log.Warn().Err(err).Int64("space_id", id).Msg("space cache write failed")
		}
	}
	return space, nil
}

func (r *CachedSpaceRepository) Update(ctx context.Context, space *domain.Space) error {
	if err := r.SpaceRepository.Update(ctx, space); err != nil {
		return err
	}
	r.invalidate(ctx, space.ID)
	return nil
}

func (r *CachedSpaceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.SpaceRepository.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedSpaceRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		log.Warn().Err(err).Int64("space_id", id).Msg("space cache invalidation failed")
	}
}

// CachedRoomRepository flushes cached spaces after any room write, since a
// room is part of its space aggregate.
type CachedRoomRepository struct {
	domain.RoomRepository
	cache *SpaceCache
}

// NewCachedRoomRepository decorates next with cache invalidation
func NewCachedRoomRepository(next domain.RoomRepository, cache *SpaceCache) *CachedRoomRepository {
	return &CachedRoomRepository{RoomRepository: next, cache: cache}
}

func (r *CachedRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	if err := r.RoomRepository.Save(ctx, room); err != nil {
		return err
	}
	r.flush(ctx)
	return nil
}

func (r *CachedRoomRepository) Update(ctx context.Context, id int64, update *domain.RoomUpdate) error {
	if err := r.RoomRepository.Update(ctx, id, update); err != nil {
		return err
	}
	r.flush(ctx)
	return nil
}

func (r *CachedRoomRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if err := r.RoomRepository.DeleteByIDs(ctx, ids); err != nil {
		return err
	}
	r.flush(ctx)
	return nil
}

func (r *CachedRoomRepository) flush(ctx context.Context) {
	if _, err := r.cache.FlushAll(ctx); err != nil {
		log.Warn().Err(err).Msg("space cache flush failed")
	}
}
