package room

import (
	"time"

	"github.com/KirkDiggler/minimposter/internal/models"
)

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Code string
}

type RoomExistsInput struct {
	Code string
}

type DeleteRoomInput struct {
	Code string
}

type ListRoomsInput struct {
}

type ListRoomsOutput struct {
	Rooms []*models.Room
}

type ListStaleRoomsInput struct {
	Before time.Time
}

type ListStaleRoomsOutput struct {
	Codes []string
}

type WatchRoomInput struct {
	Code string
}
