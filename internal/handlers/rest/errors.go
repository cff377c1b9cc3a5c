package rest

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/minimposter/internal/services/room"
)

// statusFor maps room errors to HTTP status codes; anything unknown is a 500
func statusFor(err error) int {
	var roomErr room.RoomError
	if !errors.As(err, &roomErr) {
		return http.StatusInternalServerError
	}

	switch roomErr {
	case room.ErrRoomNotFound, room.ErrPlayerNotFound:
		return http.StatusNotFound
	case room.ErrNotHost, room.ErrNotJudge:
		return http.StatusForbidden
	case room.ErrInvalidPhase,
		room.ErrJudgeRequired,
		room.ErrNotEnoughPlayers,
		room.ErrTooManyImposters,
		room.ErrAlreadyVoted,
		room.ErrWaitingForJudge:
		return http.StatusConflict
	case room.ErrNameRequired,
		room.ErrInvalidSettings,
		room.ErrInvalidVote,
		room.ErrWordRequired,
		room.ErrInvalidRoom,
		room.ErrNilInput:
		return http.StatusBadRequest
	case room.ErrNoRoomCode:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
