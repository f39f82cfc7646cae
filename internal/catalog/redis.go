package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces catalog keys when RedisConfig.Prefix is empty
const DefaultRedisPrefix = "dungeongen:catalog"

const (
	roomTemplatesKey = "room_templates"
	itemsKey         = "items"
	enemiesKey       = "enemies"
	npcsKey          = "npcs"
)

// RedisSource reads a catalog stored as one JSON document per category
type RedisSource struct {
	client redis.UniversalClient
	prefix string
}

// RedisConfig contains configuration for the redis catalog source
type RedisConfig struct {
	Client redis.UniversalClient
	Prefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.New("catalog: redis config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.New("catalog: redis client cannot be nil")
	}
	return nil
}

// NewRedisSource creates a redis-backed catalog source
func NewRedisSource(cfg *RedisConfig) (*RedisSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &RedisSource{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

// Name returns the source description used in logs
func (s *RedisSource) Name() string {
	return "redis:" + s.prefix
}

func (s *RedisSource) key(category string) string {
	return s.prefix + ":" + category
}

// Load reads all four categories. Missing categories are left empty; when
// none exist ErrNotFound is returned.
func (s *RedisSource) Load(ctx context.Context) (*Catalog, error) {
	c := &Catalog{}
	targets := []struct {
		category string
		dest     any
	}{
		{roomTemplatesKey, &c.RoomTemplates},
		{itemsKey, &c.Items},
		{enemiesKey, &c.Enemies},
		{npcsKey, &c.NPCs},
	}

	found := 0
	for _, target := range targets {
		data, err := s.client.Get(ctx, s.key(target.category)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", target.category, err)
		}
		if err := json.Unmarshal(data, target.dest); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", target.category, err)
		}
		found++
	}

	if found == 0 {
		return nil, ErrNotFound
	}
	return c, nil
}

// Store writes every category of c in a single transaction
func (s *RedisSource) Store(ctx context.Context, c *Catalog) error {
	if c == nil {
		return errors.New("catalog: catalog cannot be nil")
	}

	docs := []struct {
		category string
		value    any
	}{
		{roomTemplatesKey, c.RoomTemplates},
		{itemsKey, c.Items},
		{enemiesKey, c.Enemies},
		{npcsKey, c.NPCs},
	}

	pipe := s.client.TxPipeline()
	for _, doc := range docs {
		data, err := json.Marshal(doc.value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", doc.category, err)
		}
		pipe.Set(ctx, s.key(doc.category), data, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}
	return nil
}
