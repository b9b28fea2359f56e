package database

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type RedisHandle struct {
	RDB  *redis.Client
	name string
}

// OpenRedis builds a client from a redis:// or rediss:// URL. A numeric name
// selects the logical database, overriding the one in the URL path.
func OpenRedis(connURL, name string) (*RedisHandle, error) {
	opts, err := redis.ParseURL(connURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if name != "" {
		db, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("redis DATABASE_NAME must be a database number, got %q", name)
		}
		opts.DB = db
	}

	return &RedisHandle{
		RDB:  redis.NewClient(opts),
		name: "db" + strconv.Itoa(opts.DB),
	}, nil
}

func (h *RedisHandle) Name() string {
	return h.name
}

// ListCollections reports keys from a single SCAN page, so the result may be
// shorter than limit even when more keys exist.
func (h *RedisHandle) ListCollections(ctx context.Context, limit int) ([]string, error) {
	keys, _, err := h.RDB.Scan(ctx, 0, "*", int64(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("scanning keys: %w", err)
	}
	if len(keys) > limit {
		keys = keys[:limit]
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func (h *RedisHandle) Close() error {
	if h.RDB == nil {
		return nil
	}
	err := h.RDB.Close()
	log.Println("Redis connection closed.")
	return err
}
