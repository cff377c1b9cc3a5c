// Package votes tallies a round's votes and decides which faction won.
package votes

import (
	"sort"

	"github.com/KirkDiggler/minimposter/internal/models"
)

// Points awarded at resolution
const (
	WinPoints         = 2
	ConsolationPoints = 1
)

// Result is the outcome of a voting round
type Result struct {
	// Counts maps each voted-for player ID to its number of votes
	Counts map[string]int `json:"counts"`

	// MaxVotes is the highest tally, 0 when nobody voted
	MaxVotes int `json:"maxVotes"`

	// VotedOutIDs are every player tied on MaxVotes, sorted
	VotedOutIDs []string `json:"votedOutIds"`

	// CaughtImposterIDs are the impostors among VotedOutIDs, sorted
	CaughtImposterIDs []string `json:"caughtImposterIds"`

	// TotalImposters is the number of impostors in the roster
	TotalImposters int `json:"totalImposters"`

	// Winner is PLAYERS only when every impostor was voted out
	Winner models.Winner `json:"winner"`
}

// Tally counts votes per target across every player who cast one
func Tally(players []*models.Player) map[string]int {
	counts := make(map[string]int)
	for _, p := range players {
		if p.VoteID != "" {
			counts[p.VoteID]++
		}
	}
	return counts
}

// VotedOut returns every target on the highest tally; ties are all eliminated
func VotedOut(counts map[string]int) (int, []string) {
	maxVotes := 0
	for _, n := range counts {
		if n > maxVotes {
			maxVotes = n
		}
	}

	ids := make([]string, 0)
	if maxVotes == 0 {
		return 0, ids
	}
	for id, n := range counts {
		if n == maxVotes {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return maxVotes, ids
}

// DecideWinner is a pure function of the impostor set and the voted-out set
func DecideWinner(imposterIDs, votedOutIDs []string) models.Winner {
	out := make(map[string]bool, len(votedOutIDs))
	for _, id := range votedOutIDs {
		out[id] = true
	}
	for _, id := range imposterIDs {
		if !out[id] {
			return models.WinnerImposters
		}
	}
	return models.WinnerPlayers
}

// Resolve tallies the votes and determines the winner
func Resolve(players []*models.Player) *Result {
	counts := Tally(players)
	maxVotes, votedOut := VotedOut(counts)

	imposterIDs := make([]string, 0)
	for _, p := range players {
		if p.IsImposter {
			imposterIDs = append(imposterIDs, p.ID)
		}
	}
	sort.Strings(imposterIDs)

	isImposter := make(map[string]bool, len(imposterIDs))
	for _, id := range imposterIDs {
		isImposter[id] = true
	}
	caught := make([]string, 0)
	for _, id := range votedOut {
		if isImposter[id] {
			caught = append(caught, id)
		}
	}

	return &Result{
		Counts:            counts,
		MaxVotes:          maxVotes,
		VotedOutIDs:       votedOut,
		CaughtImposterIDs: caught,
		TotalImposters:    len(imposterIDs),
		Winner:            DecideWinner(imposterIDs, votedOut),
	}
}

// ApplyScores returns a copy of the roster with the round's points added
func ApplyScores(players []*models.Player, winner models.Winner) []*models.Player {
	updated := models.ClonePlayers(players)
	for _, p := range updated {
		if p.IsJudge {
			continue
		}
		switch {
		case winner == models.WinnerPlayers && !p.IsImposter:
			p.Score += WinPoints
		case winner == models.WinnerImposters && p.IsImposter:
			p.Score += WinPoints
		case winner == models.WinnerImposters && !p.IsImposter:
			p.Score += ConsolationPoints
		}
	}
	return updated
}
