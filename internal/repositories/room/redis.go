package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix       = "room:"
	roomActivityKey     = "room_activity"
	roomUpdatesPrefix   = "room_updates:"
	defaultWatchBacklog = 16
)

// ErrRoomNotFound is returned when a room is not stored or its record is unreadable
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// WatchBacklog is how many snapshots a slow watcher may lag behind
	WatchBacklog int
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client  *redis.Client
	backlog int
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	backlog := cfg.WatchBacklog
	if backlog <= 0 {
		backlog = defaultWatchBacklog
	}

	return &redisRepository{
		client:  cfg.RedisClient,
		backlog: backlog,
	}, nil
}

func roomKey(code string) string {
	return roomKeyPrefix + code
}

func updatesChannel(code string) string {
	return roomUpdatesPrefix + code
}

// decodeRoom returns nil for records that cannot be read as a room
func decodeRoom(data string) *models.Room {
	var room models.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil
	}
	if room.Code == "" {
		return nil
	}
	return &room
}

// SaveRoom writes the record, indexes its activity and publishes it
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}
	if input.Room.Code == "" {
		return errors.New("room code cannot be empty")
	}

	roomJSON, err := json.Marshal(input.Room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, roomKey(input.Room.Code), roomJSON, 0)
	pipe.ZAdd(ctx, roomActivityKey, redis.Z{
		Score:  float64(input.Room.LastActivity.UnixMilli()),
		Member: input.Room.Code,
	})
	pipe.Publish(ctx, updatesChannel(input.Room.Code), roomJSON)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by code from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	roomJSON, err := r.client.Get(ctx, roomKey(input.Code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room := decodeRoom(roomJSON)
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// RoomExists reports whether a record is stored under the code
func (r *redisRepository) RoomExists(ctx context.Context, input *RoomExistsInput) (bool, error) {
	if input == nil || input.Code == "" {
		return false, errors.New("input and room code cannot be empty")
	}

	n, err := r.client.Exists(ctx, roomKey(input.Code)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}

	return n > 0, nil
}

// DeleteRoom removes the record and its activity entry
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, roomKey(input.Code))
	pipe.ZRem(ctx, roomActivityKey, input.Code)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// ListRooms retrieves every indexed room, most recently active first
func (r *redisRepository) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	codes, err := r.client.ZRevRange(ctx, roomActivityKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room codes: %w", err)
	}

	if len(codes) == 0 {
		return &ListRoomsOutput{
			Rooms: []*models.Room{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(codes))
	for i, code := range codes {
		cmds[i] = pipe.Get(ctx, roomKey(code))
	}

	// A missing key surfaces as redis.Nil on Exec; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(codes))
	for i, cmd := range cmds {
		roomJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get room %s: %w", codes[i], err)
		}

		room := decodeRoom(roomJSON)
		if room == nil {
			continue
		}
		rooms = append(rooms, room)
	}

	return &ListRoomsOutput{
		Rooms: rooms,
	}, nil
}

// ListStaleRooms returns codes whose last activity is strictly before input.Before
func (r *redisRepository) ListStaleRooms(ctx context.Context, input *ListStaleRoomsInput) (*ListStaleRoomsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	codes, err := r.client.ZRangeByScore(ctx, roomActivityKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(input.Before.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stale rooms: %w", err)
	}

	return &ListStaleRoomsOutput{
		Codes: codes,
	}, nil
}

// WatchRoom subscribes to the room's update channel. The subscription is confirmed
// before returning, so every save made after the call is delivered.
func (r *redisRepository) WatchRoom(ctx context.Context, input *WatchRoomInput) (<-chan *models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	sub := r.client.Subscribe(ctx, updatesChannel(input.Code))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to room: %w", err)
	}

	out := make(chan *models.Room, r.backlog)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				room := decodeRoom(msg.Payload)
				if room == nil {
					continue
				}
				select {
				case out <- room:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
