package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/minimposter/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/minimposter/internal/models"
)

// Repository defines the interface for room persistence.
// Saves replace the whole record and notify every watcher of the room code.
type Repository interface {
	// SaveRoom replaces the stored room and broadcasts it
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// RoomExists reports whether a code is taken
	RoomExists(ctx context.Context, input *RoomExistsInput) (bool, error)

	// DeleteRoom removes a room and its activity entry
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// ListRooms retrieves every stored room
	ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error)

	// ListStaleRooms returns codes idle since before the given time
	ListStaleRooms(ctx context.Context, input *ListStaleRoomsInput) (*ListStaleRoomsOutput, error)

	// WatchRoom streams every saved version of a room until ctx is cancelled
	WatchRoom(ctx context.Context, input *WatchRoomInput) (<-chan *models.Room, error)
}
