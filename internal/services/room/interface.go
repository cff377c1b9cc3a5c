package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/minimposter/internal/services/room Service

import "context"

// Service defines the room and round operations.
// Every mutation loads the room, validates, and replaces the whole record.
type Service interface {
	// CreateRoom opens a new room with the caller as host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player, or returns the existing one with the same name
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// GetRoom loads a room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// UpdateRoom replaces a room after checking its structural invariants
	UpdateRoom(ctx context.Context, input *UpdateRoomInput) (*UpdateRoomOutput, error)

	// ObserveRoom streams the current room and every later save
	ObserveRoom(ctx context.Context, input *ObserveRoomInput) (*ObserveRoomOutput, error)

	// ToggleCategory adds or removes a category from the SYSTEM word pool
	ToggleCategory(ctx context.Context, input *ToggleCategoryInput) (*ToggleCategoryOutput, error)

	// UpdateSettings changes the host-controlled round settings
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)

	// AssignJudge makes one player the judge, or clears the judge
	AssignJudge(ctx context.Context, input *AssignJudgeInput) (*AssignJudgeOutput, error)

	// StartRound moves the lobby into role reveal
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// SubmitJudgeWord lets the judge supply the word for a JUDGE round
	SubmitJudgeWord(ctx context.Context, input *SubmitJudgeWordInput) (*SubmitJudgeWordOutput, error)

	// AdvancePhase performs the host-driven phase transitions
	AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error)

	// ExpireTimer ends a timed discussion once its deadline has passed
	ExpireTimer(ctx context.Context, input *ExpireTimerInput) (*ExpireTimerOutput, error)

	// CastVote records a vote and resolves the round after the last one
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// ListRooms returns every stored room
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// ReapStaleRooms deletes rooms idle for longer than MaxIdle
	ReapStaleRooms(ctx context.Context, input *ReapStaleRoomsInput) (*ReapStaleRoomsOutput, error)
}
