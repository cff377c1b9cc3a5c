package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/minimposter/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetPhaseMessage returns the announcement for a room entering a phase
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetRoleMessage returns the private message telling a player their role and word
	GetRoleMessage(ctx context.Context, input *GetRoleMessageInput) (*GetRoleMessageOutput, error)

	// GetResultMessage returns the end-of-round announcement
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
