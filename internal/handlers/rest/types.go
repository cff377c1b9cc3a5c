package rest

import (
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/votes"
)

// JoinRequest is the body for creating or joining a room
type JoinRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

// JoinResponse carries the room and the caller's player ID
type JoinResponse struct {
	Room     *models.Room `json:"room"`
	PlayerID string       `json:"playerId"`
	Rejoined bool         `json:"rejoined,omitempty"`
}

// PlayerRequest identifies the acting player
type PlayerRequest struct {
	PlayerID string `json:"playerId"`
}

type VoteRequest struct {
	PlayerID string `json:"playerId"`
	TargetID string `json:"targetId"`
}

// VoteResponse includes the result once the round resolves
type VoteResponse struct {
	Room   *models.Room  `json:"room"`
	Result *votes.Result `json:"result,omitempty"`
}

type JudgeWordRequest struct {
	PlayerID string `json:"playerId"`
	Category string `json:"category"`
	Word     string `json:"word"`
}

// SettingsRequest changes only the fields present
type SettingsRequest struct {
	PlayerID       string             `json:"playerId"`
	ImpostersCount *int               `json:"impostersCount,omitempty"`
	RoundDuration  *int               `json:"roundDuration,omitempty"`
	TimeMode       *models.TimeMode   `json:"timeMode,omitempty"`
	WordSource     *models.WordSource `json:"wordSource,omitempty"`
}

type CategoryRequest struct {
	PlayerID   string `json:"playerId"`
	CategoryID string `json:"categoryId"`
}

// JudgeRequest assigns the judge; an empty judgeId clears it
type JudgeRequest struct {
	PlayerID string `json:"playerId"`
	JudgeID  string `json:"judgeId"`
}

type ExpireResponse struct {
	Room    *models.Room `json:"room"`
	Expired bool         `json:"expired"`
}

type RoomResponse struct {
	Room *models.Room `json:"room"`
}

type RoomsResponse struct {
	Rooms []*models.Room `json:"rooms"`
}

type errorResponse struct {
	Error string `json:"error"`
}
