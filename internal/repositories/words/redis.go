package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey = "db_categories"
	wordsKey      = "db_words"
)

// Config holds configuration for the Redis word bank
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed word bank
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetSnapshot reads both lists. Each list falls back to the built-in one when missing or unreadable.
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.WordBank, error) {
	pipe := r.client.Pipeline()
	catsCmd := pipe.Get(ctx, categoriesKey)
	wordsCmd := pipe.Get(ctx, wordsKey)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get word bank: %w", err)
	}

	defaults := DefaultBank()
	bank := &models.WordBank{
		Categories: defaults.Categories,
		Words:      defaults.Words,
	}

	if data, err := catsCmd.Result(); err == nil {
		var categories []*models.Category
		if json.Unmarshal([]byte(data), &categories) == nil {
			bank.Categories = categories
		}
	}

	if data, err := wordsCmd.Result(); err == nil {
		var words []*models.WordPair
		if json.Unmarshal([]byte(data), &words) == nil {
			bank.Words = words
		}
	}

	return bank, nil
}

// ReplaceSnapshot writes both lists in one pipeline
func (r *redisRepository) ReplaceSnapshot(ctx context.Context, input *ReplaceSnapshotInput) error {
	if input == nil || input.Bank == nil {
		return errors.New("input and bank cannot be nil")
	}

	catsJSON, err := json.Marshal(input.Bank.Categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	wordsJSON, err := json.Marshal(input.Bank.Words)
	if err != nil {
		return fmt.Errorf("failed to marshal words: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, categoriesKey, catsJSON, 0)
	pipe.Set(ctx, wordsKey, wordsJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save word bank: %w", err)
	}

	return nil
}
