package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// Store persists the cart item list under a single durable key. Load is
// called once at startup; Save overwrites the key on every mutation.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// ErrEmpty is returned by Load when nothing has been persisted yet.
var ErrEmpty = errors.New("no cart persisted")

// FileStore keeps the serialized cart in a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and deserializes the persisted item list.
func (s *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}
	return items, nil
}

// Save serializes the item list and overwrites the cart file.
func (s *FileStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}

// RedisStore keeps the serialized cart under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a RedisStore using the given client and key.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Load reads and deserializes the persisted item list.
func (s *RedisStore) Load() ([]Item, error) {
	data, err := s.client.Get(context.Background(), s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart data: %w", err)
	}
	return items, nil
}

// Save serializes the item list and overwrites the Redis key. The cart
// has no TTL: it lives until cleared.
func (s *RedisStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(context.Background(), s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
