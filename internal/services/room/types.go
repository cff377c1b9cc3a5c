package room

import (
	"time"

	"github.com/KirkDiggler/minimposter/internal/common/clock"
	"github.com/KirkDiggler/minimposter/internal/common/uuid"
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
	roomRepo "github.com/KirkDiggler/minimposter/internal/repositories/room"
	wordsRepo "github.com/KirkDiggler/minimposter/internal/repositories/words"
	"github.com/KirkDiggler/minimposter/internal/votes"
	"github.com/rs/zerolog"
)

// Room codes are four digits
const (
	minRoomCode  = 1000
	roomCodeSpan = 9000

	defaultMaxCodeAttempts = 50
)

// Minimum roster sizes to start a round
const (
	MinPlayersSystem = 3
	MinPlayersJudge  = 4
)

// Config holds configuration for the room service
type Config struct {
	// Repository dependencies
	RoomRepo  roomRepo.Repository
	WordsRepo wordsRepo.Repository

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Language selects category labels; defaults to Arabic
	Language models.Language

	// MaxCodeAttempts bounds room code allocation retries
	MaxCodeAttempts int

	Logger zerolog.Logger
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	HostName string
	Location string
}

// CreateRoomOutput contains the new room and the host's player ID
type CreateRoomOutput struct {
	Room     *models.Room
	PlayerID string
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	Code     string
	Name     string
	Location string
}

// JoinRoomOutput contains the room after joining
type JoinRoomOutput struct {
	Room     *models.Room
	PlayerID string

	// Rejoined is true when the name matched an existing player
	Rejoined bool
}

type GetRoomInput struct {
	Code string
}

type GetRoomOutput struct {
	Room *models.Room
}

type UpdateRoomInput struct {
	Room *models.Room
}

type UpdateRoomOutput struct {
	Room *models.Room
}

type ObserveRoomInput struct {
	Code string
}

// ObserveRoomOutput carries a stream that starts with the current room.
// It closes when the caller's context is cancelled.
type ObserveRoomOutput struct {
	Updates <-chan *models.Room
}

type ToggleCategoryInput struct {
	Code       string
	PlayerID   string
	CategoryID string
}

type ToggleCategoryOutput struct {
	Room *models.Room
}

// UpdateSettingsInput changes only the fields that are set
type UpdateSettingsInput struct {
	Code     string
	PlayerID string

	ImpostersCount *int
	RoundDuration  *int
	TimeMode       *models.TimeMode
	WordSource     *models.WordSource
}

type UpdateSettingsOutput struct {
	Room *models.Room
}

// AssignJudgeInput names the new judge; an empty JudgeID clears the judge
type AssignJudgeInput struct {
	Code     string
	PlayerID string
	JudgeID  string
}

type AssignJudgeOutput struct {
	Room *models.Room
}

type StartRoundInput struct {
	Code     string
	PlayerID string
}

type StartRoundOutput struct {
	Room *models.Room
}

type SubmitJudgeWordInput struct {
	Code     string
	PlayerID string
	Category string
	Word     string
}

type SubmitJudgeWordOutput struct {
	Room *models.Room
}

type AdvancePhaseInput struct {
	Code     string
	PlayerID string
}

type AdvancePhaseOutput struct {
	Room *models.Room
}

type ExpireTimerInput struct {
	Code     string
	PlayerID string
}

// ExpireTimerOutput reports whether the discussion was actually ended
type ExpireTimerOutput struct {
	Room    *models.Room
	Expired bool
}

type CastVoteInput struct {
	Code     string
	PlayerID string
	TargetID string
}

// CastVoteOutput includes the round result once the last vote is in
type CastVoteOutput struct {
	Room   *models.Room
	Result *votes.Result
}

type ListRoomsInput struct {
}

type ListRoomsOutput struct {
	Rooms []*models.Room
}

type ReapStaleRoomsInput struct {
	MaxIdle time.Duration
}

type ReapStaleRoomsOutput struct {
	Codes []string
}
