package models

// Phase is the authoritative position of a room in the round state machine
type Phase string

const (
	// PhaseEntry is the client-local state before a room exists; it is never persisted
	PhaseEntry Phase = "ENTRY"

	// PhaseLobby is where players gather and the host configures the next round
	PhaseLobby Phase = "LOBBY"

	// PhaseRoleReveal is where each player privately looks at their role and word
	PhaseRoleReveal Phase = "ROLE_REVEAL"

	// PhaseDiscussion is the (optionally timed) clue-giving phase
	PhaseDiscussion Phase = "DISCUSSION"

	// PhaseVoting is where every non-judge player votes for a suspect
	PhaseVoting Phase = "VOTING"

	// PhaseResults shows the winner and updated scores
	PhaseResults Phase = "RESULTS"
)

var phaseTransitions = map[Phase][]Phase{
	PhaseEntry:      {PhaseLobby},
	PhaseLobby:      {PhaseRoleReveal},
	PhaseRoleReveal: {PhaseDiscussion},
	PhaseDiscussion: {PhaseVoting},
	PhaseVoting:     {PhaseResults},
	PhaseResults:    {PhaseLobby},
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// IsValid reports whether p is one of the known phases
func (p Phase) IsValid() bool {
	_, ok := phaseTransitions[p]
	return ok
}

// CanTransitionTo checks if moving from p to target is a legal edge
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, next := range phaseTransitions[p] {
		if next == target {
			return true
		}
	}
	return false
}

// InRound reports whether the phase belongs to an active round
func (p Phase) InRound() bool {
	switch p {
	case PhaseRoleReveal, PhaseDiscussion, PhaseVoting, PhaseResults:
		return true
	default:
		return false
	}
}

// WordSource is where the secret word for a round comes from
type WordSource string

const (
	// WordSourceSystem picks a random word from the word bank
	WordSourceSystem WordSource = "SYSTEM"

	// WordSourceJudge lets the designated judge type the word in
	WordSourceJudge WordSource = "JUDGE"
)

// IsValid reports whether the word source is known
func (w WordSource) IsValid() bool {
	return w == WordSourceSystem || w == WordSourceJudge
}

// TimeMode controls whether the discussion phase has a countdown
type TimeMode string

const (
	// TimeModeOpen has no countdown; the host ends discussion manually
	TimeModeOpen TimeMode = "OPEN"

	// TimeModeTimed ends discussion after the room's round duration
	TimeModeTimed TimeMode = "TIMED"
)

// IsValid reports whether the time mode is known
func (t TimeMode) IsValid() bool {
	return t == TimeModeOpen || t == TimeModeTimed
}

// Winner is the faction that won a round
type Winner string

const (
	// WinnerNone means voting has not resolved yet
	WinnerNone Winner = ""

	// WinnerPlayers means every impostor was voted out
	WinnerPlayers Winner = "PLAYERS"

	// WinnerImposters means at least one impostor survived the vote
	WinnerImposters Winner = "IMPOSTERS"
)
