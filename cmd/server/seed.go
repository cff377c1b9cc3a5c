package main

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/minimposter/internal/models"
	wordsRepo "github.com/KirkDiggler/minimposter/internal/repositories/words"
)

// seed merges a category,word CSV into the stored word bank
func seed(ctx context.Context, cfg *Config, path string, replace bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	redisClient, err := newRedisClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	repo, err := wordsRepo.NewRedis(&wordsRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create word bank: %w", err)
	}

	var existing []*models.Category
	if !replace {
		current, err := repo.GetSnapshot(ctx, &wordsRepo.GetSnapshotInput{})
		if err != nil {
			return err
		}
		existing = current.Categories
	}

	bank, err := wordsRepo.ParseCSV(f, existing)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := repo.ReplaceSnapshot(ctx, &wordsRepo.ReplaceSnapshotInput{Bank: bank}); err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Int("categories", len(bank.Categories)).
		Int("words", len(bank.Words)).
		Msg("word bank seeded")
	return nil
}
