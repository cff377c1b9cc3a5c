package room

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRoom(code string, lastActivity time.Time) *models.Room {
	return &models.Room{
		Code:           code,
		Categories:     []string{"country"},
		ImpostersCount: 1,
		RoundDuration:  180,
		WordSource:     models.WordSourceSystem,
		TimeMode:       models.TimeModeTimed,
		Phase:          models.PhaseLobby,
		Players: []*models.Player{
			{ID: "p1", Name: "Alice", IsHost: true},
		},
		LastActivity: lastActivity,
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoomRoundTrips() {
	endsAt := s.testNow.Add(3 * time.Minute)
	room := s.newRoom("4821", s.testNow)
	room.Phase = models.PhaseDiscussion
	room.TimerEndsAt = &endsAt
	room.SecretWord = "Apple"
	room.CurrentCategoryName = "Fruit"
	room.Players = append(room.Players,
		&models.Player{ID: "p2", Name: "Bob", IsImposter: true, Score: 4, Location: "Cairo"},
		&models.Player{ID: "p3", Name: "Cara", Word: models.StringPtr("Apple"), HasVoted: true, VoteID: "p2"},
		&models.Player{ID: "p4", Name: "Dan", IsJudge: true, Word: models.StringPtr(models.JudgeMarker), HasVoted: true},
	)

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "4821"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(room, retrieved)
	s.Nil(retrieved.Players[1].Word)
	s.Equal("Apple", retrieved.Players[2].WordValue())
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesWholeRecord() {
	room := s.newRoom("1111", s.testNow)
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	updated := room.Clone()
	updated.Players = append(updated.Players, &models.Player{ID: "p2", Name: "Bob"})
	updated.ImpostersCount = 2
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: updated}))

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "1111"})
	s.Require().NoError(err)
	s.Len(retrieved.Players, 2)
	s.Equal(2, retrieved.ImpostersCount)
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "9999"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestMalformedRecordIsTreatedAsAbsent() {
	s.Require().NoError(s.mr.Set("room:2222", "{not json"))
	_, err := s.mr.ZAdd(roomActivityKey, float64(s.testNow.UnixMilli()), "2222")
	s.Require().NoError(err)
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("3333", s.testNow)}))

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "2222"})
	s.ErrorIs(err, ErrRoomNotFound)

	result, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Rooms, 1)
	s.Equal("3333", result.Rooms[0].Code)
}

func (s *RedisRepositoryTestSuite) TestRoomExists() {
	exists, err := s.repo.RoomExists(context.Background(), &RoomExistsInput{Code: "1234"})
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("1234", s.testNow)}))

	exists, err = s.repo.RoomExists(context.Background(), &RoomExistsInput{Code: "1234"})
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RedisRepositoryTestSuite) TestListRoomsMostRecentFirst() {
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("1000", s.testNow)}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("2000", s.testNow.Add(time.Minute))}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("3000", s.testNow.Add(-time.Minute))}))

	result, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Require().Len(result.Rooms, 3)
	s.Equal("2000", result.Rooms[0].Code)
	s.Equal("1000", result.Rooms[1].Code)
	s.Equal("3000", result.Rooms[2].Code)
}

func (s *RedisRepositoryTestSuite) TestListRoomsEmpty() {
	result, err := s.repo.ListRooms(context.Background(), &ListRoomsInput{})
	s.Require().NoError(err)
	s.Empty(result.Rooms)
}

func (s *RedisRepositoryTestSuite) TestListStaleRoomsAndDelete() {
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("1000", s.testNow.Add(-2*time.Hour))}))
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("2000", s.testNow)}))

	stale, err := s.repo.ListStaleRooms(context.Background(), &ListStaleRoomsInput{Before: s.testNow.Add(-time.Hour)})
	s.Require().NoError(err)
	s.Equal([]string{"1000"}, stale.Codes)

	s.Require().NoError(s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{Code: "1000"}))

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "1000"})
	s.ErrorIs(err, ErrRoomNotFound)

	stale, err = s.repo.ListStaleRooms(context.Background(), &ListStaleRoomsInput{Before: s.testNow.Add(time.Hour)})
	s.Require().NoError(err)
	s.Equal([]string{"2000"}, stale.Codes)
}

func (s *RedisRepositoryTestSuite) TestWatchRoomReceivesEverySave() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := s.repo.WatchRoom(ctx, &WatchRoomInput{Code: "5555"})
	s.Require().NoError(err)

	room := s.newRoom("5555", s.testNow)
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room}))

	second := room.Clone()
	second.Phase = models.PhaseRoleReveal
	second.SecretWord = "Egypt"
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: second}))

	// Saves to other rooms are not delivered
	s.Require().NoError(s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: s.newRoom("6666", s.testNow)}))

	select {
	case got := <-updates:
		s.Equal(models.PhaseLobby, got.Phase)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for first update")
	}

	select {
	case got := <-updates:
		s.Equal(models.PhaseRoleReveal, got.Phase)
		s.Equal("Egypt", got.SecretWord)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for second update")
	}

	cancel()
	s.Eventually(func() bool {
		select {
		case _, ok := <-updates:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
