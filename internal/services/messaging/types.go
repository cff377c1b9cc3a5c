package messaging

import (
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Language of every message; defaults to Arabic
	Language models.Language

	// Random picks between message variants; defaults to a time-seeded generator
	Random random.Source
}

// GetPhaseMessageInput contains parameters for a phase announcement
type GetPhaseMessageInput struct {
	Phase models.Phase

	// SecondsLeft is shown for a timed discussion
	SecondsLeft int
}

// GetPhaseMessageOutput contains the phase announcement
type GetPhaseMessageOutput struct {
	Title   string
	Message string
}

// GetRoleMessageInput contains parameters for a role message
type GetRoleMessageInput struct {
	Player       *models.Player
	CategoryName string

	// SecretWord is the round's word, revealed only to the judge
	SecretWord string
}

// GetRoleMessageOutput contains the private role message
type GetRoleMessageOutput struct {
	Message string
}

// GetResultMessageInput contains parameters for the round result
type GetResultMessageInput struct {
	Winner        models.Winner
	VotedOutNames []string
	ImposterNames []string
}

// GetResultMessageOutput contains the result announcement
type GetResultMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains the error to explain
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains the explanation
type GetErrorMessageOutput struct {
	Message string
}
