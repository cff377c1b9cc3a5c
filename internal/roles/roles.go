// Package roles splits a roster into impostors and citizens and decides who sees the secret word.
package roles

import (
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
)

// Assigner runs role assignment for a round
type Assigner struct {
	random random.Source
}

// Config for the assigner
type Config struct {
	Random random.Source
}

// New creates an assigner; a nil source falls back to a time-seeded generator
func New(cfg *Config) *Assigner {
	var src random.Source
	if cfg != nil {
		src = cfg.Random
	}
	if src == nil {
		src = random.New(nil)
	}
	return &Assigner{random: src}
}

// Assign returns a fresh roster with roles, words and vote state set for a new round.
// Judges never join the impostor pool. The caller must ensure impostersCount is below the
// number of non-judge players; otherwise every non-judge becomes an impostor.
func (a *Assigner) Assign(players []*models.Player, impostersCount int, secretWord string) []*models.Player {
	updated := models.ClonePlayers(players)

	pool := make([]*models.Player, 0, len(updated))
	for _, p := range updated {
		if p.IsJudge {
			p.IsImposter = false
			p.HasVoted = true
			p.VoteID = ""
			p.Word = models.StringPtr(models.JudgeMarker)
			continue
		}
		pool = append(pool, p)
	}

	a.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for i, p := range pool {
		p.IsImposter = i < impostersCount
		p.HasVoted = false
		p.VoteID = ""
		if p.IsImposter {
			p.Word = nil
		} else {
			p.Word = models.StringPtr(secretWord)
		}
	}

	return updated
}

// CountImposters returns how many players are flagged as impostors
func CountImposters(players []*models.Player) int {
	n := 0
	for _, p := range players {
		if p.IsImposter {
			n++
		}
	}
	return n
}
