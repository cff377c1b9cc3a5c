package words

import "github.com/KirkDiggler/minimposter/internal/models"

type GetSnapshotInput struct {
}

type ReplaceSnapshotInput struct {
	Bank *models.WordBank
}
