package words

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/minimposter/internal/repositories/words Repository

import (
	"context"

	"github.com/KirkDiggler/minimposter/internal/models"
)

// Repository defines the interface for the word bank
type Repository interface {
	// GetSnapshot returns the current categories and words, falling back to the built-in bank
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.WordBank, error)

	// ReplaceSnapshot overwrites the stored bank; used by seeding only
	ReplaceSnapshot(ctx context.Context, input *ReplaceSnapshotInput) error
}
