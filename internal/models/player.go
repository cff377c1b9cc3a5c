package models

// JudgeMarker is shown to the judge in place of the secret word
const JudgeMarker = "⚖️"

// Player represents a participant in a room
type Player struct {
	// ID is generated at join time and stable for the player's session
	ID string `json:"id"`

	// Name is the display name; rejoining with the same name reuses the ID
	Name string `json:"name"`

	// IsHost marks the room creator, who controls configuration and phase changes
	IsHost bool `json:"isHost"`

	// IsImposter is assigned fresh every round
	IsImposter bool `json:"isImposter"`

	// IsJudge marks the player who supplies the word in JUDGE mode
	IsJudge bool `json:"isJudge"`

	// Score only ever grows, at round resolution
	Score int `json:"score"`

	// HasVoted is reset at the start of every role assignment
	HasVoted bool `json:"hasVoted"`

	// VoteID is the ID of the player this player voted for
	VoteID string `json:"voteId,omitempty"`

	// Word is what this player sees this round; nil for impostors
	Word *string `json:"word,omitempty"`

	// Location is informational only
	Location string `json:"location,omitempty"`
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	if p.Word != nil {
		w := *p.Word
		c.Word = &w
	}
	return &c
}

// WordValue returns the player's word or an empty string when absent
func (p *Player) WordValue() string {
	if p.Word == nil {
		return ""
	}
	return *p.Word
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
