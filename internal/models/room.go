package models

import (
	"errors"
	"fmt"
	"time"
)

// Room defaults applied when a host creates a room
const (
	DefaultCategoryID     = "country"
	DefaultImpostersCount = 1
	DefaultRoundDuration  = 180
)

// RoundDurationOptions are the discussion lengths, in seconds, offered to hosts
var RoundDurationOptions = []int{120, 180, 300, 480, 600}

// Room is the root aggregate of a game, identified by its short numeric code
type Room struct {
	// Code is the stable identifier players use to join
	Code string `json:"code"`

	// Categories are the category IDs used for SYSTEM word picks; never empty
	Categories []string `json:"categories"`

	// ImpostersCount is how many impostors the next round gets
	ImpostersCount int `json:"impostersCount"`

	// RoundDuration is the discussion length in seconds for TIMED rooms
	RoundDuration int `json:"roundDuration"`

	// TimerEndsAt is set only while a timed discussion is running
	TimerEndsAt *time.Time `json:"timerEndsAt,omitempty"`

	// WordSource is where the secret word comes from
	WordSource WordSource `json:"wordSource"`

	// TimeMode controls whether discussion is timed
	TimeMode TimeMode `json:"timeMode"`

	// Phase is the state machine position
	Phase Phase `json:"phase"`

	// Players are kept in join order
	Players []*Player `json:"players"`

	// SecretWord is empty until assigned for the round
	SecretWord string `json:"secretWord"`

	// CurrentCategoryName is the display label of the round's category
	CurrentCategoryName string `json:"currentCategoryName,omitempty"`

	// Winner is set only in RESULTS
	Winner Winner `json:"winner,omitempty"`

	// LastActivity is stamped on every save
	LastActivity time.Time `json:"lastActivity"`

	// CreatedAt is when the host created the room
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers can mutate it and replace the stored record
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Categories = append([]string(nil), r.Categories...)
	if r.TimerEndsAt != nil {
		t := *r.TimerEndsAt
		c.TimerEndsAt = &t
	}
	c.Players = ClonePlayers(r.Players)
	return &c
}

// ClonePlayers deep-copies a roster
func ClonePlayers(players []*Player) []*Player {
	if players == nil {
		return nil
	}
	out := make([]*Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}

// FindPlayer returns the player with the given ID, or nil
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlayerByName returns the first player with the given name, or nil
func (r *Room) FindPlayerByName(name string) *Player {
	for _, p := range r.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Host returns the room's host, or nil
func (r *Room) Host() *Player {
	for _, p := range r.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// Judge returns the room's judge, or nil
func (r *Room) Judge() *Player {
	for _, p := range r.Players {
		if p.IsJudge {
			return p
		}
	}
	return nil
}

// NonJudgePlayers returns the players who take part in roles and voting
func (r *Room) NonJudgePlayers() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.IsJudge {
			players = append(players, p)
		}
	}
	return players
}

// AllVoted reports whether every player has a vote recorded (judges count as voted)
func (r *Room) AllVoted() bool {
	for _, p := range r.Players {
		if !p.HasVoted {
			return false
		}
	}
	return true
}

// HasCategory reports whether the category is selected
func (r *Room) HasCategory(id string) bool {
	for _, c := range r.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// WaitingForJudge reports whether a JUDGE round still needs its word
func (r *Room) WaitingForJudge() bool {
	return r.WordSource == WordSourceJudge && r.SecretWord == ""
}

// Validate checks the structural invariants every stored room must satisfy
func (r *Room) Validate() error {
	if r.Code == "" {
		return errors.New("room code cannot be empty")
	}
	if !r.Phase.IsValid() || r.Phase == PhaseEntry {
		return fmt.Errorf("invalid phase %q", r.Phase)
	}
	if !r.WordSource.IsValid() {
		return fmt.Errorf("invalid word source %q", r.WordSource)
	}
	if !r.TimeMode.IsValid() {
		return fmt.Errorf("invalid time mode %q", r.TimeMode)
	}
	if len(r.Categories) == 0 {
		return errors.New("at least one category must be selected")
	}
	if r.ImpostersCount < 1 {
		return errors.New("imposters count must be positive")
	}
	if r.RoundDuration < 1 {
		return errors.New("round duration must be positive")
	}

	hosts, judges := 0, 0
	seen := make(map[string]bool, len(r.Players))
	for _, p := range r.Players {
		if p.ID == "" {
			return errors.New("player ID cannot be empty")
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate player ID %q", p.ID)
		}
		seen[p.ID] = true
		if p.IsHost {
			hosts++
		}
		if p.IsJudge {
			judges++
			if p.IsImposter {
				return fmt.Errorf("judge %q cannot be an imposter", p.ID)
			}
		}
		if p.Score < 0 {
			return fmt.Errorf("player %q has a negative score", p.ID)
		}
	}
	if hosts != 1 {
		return fmt.Errorf("room must have exactly one host, found %d", hosts)
	}
	if judges > 1 {
		return fmt.Errorf("room can have at most one judge, found %d", judges)
	}

	switch {
	case r.Phase == PhaseResults && r.Winner != WinnerPlayers && r.Winner != WinnerImposters:
		return errors.New("results phase requires a winner")
	case r.Phase != PhaseResults && r.Winner != WinnerNone:
		return errors.New("winner can only be set in the results phase")
	}

	if r.TimerEndsAt != nil && r.Phase != PhaseDiscussion {
		return errors.New("timer can only run during discussion")
	}

	return nil
}
