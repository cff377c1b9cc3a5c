package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	roommocks "github.com/KirkDiggler/minimposter/internal/services/room/mocks"
	"github.com/KirkDiggler/minimposter/internal/votes"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *roommocks.MockService
	router      http.Handler
	room        *models.Room
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = roommocks.NewMockService(s.ctrl)

	h, err := NewHandler(&HandlerConfig{
		RoomService: s.mockService,
		Logger:      zerolog.Nop(),
	})
	s.Require().NoError(err)

	s.router = NewRouter(&RouterConfig{Handler: h, Logger: zerolog.Nop()})
	s.room = &models.Room{
		Code:  "4821",
		Phase: models.PhaseLobby,
		Players: []*models.Player{
			{ID: "p1", Name: "Alice", IsHost: true},
		},
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := NewHandler(nil)
	s.Error(err)

	_, err = NewHandler(&HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestCreate() {
	s.mockService.EXPECT().
		CreateRoom(gomock.Any(), &room.CreateRoomInput{HostName: "Alice", Location: "Cairo"}).
		Return(&room.CreateRoomOutput{Room: s.room, PlayerID: "p1"}, nil)

	rec := s.do(http.MethodPost, "/v1/rooms", `{"name":"Alice","location":"Cairo"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)
	var resp JoinResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("p1", resp.PlayerID)
	s.Equal("4821", resp.Room.Code)
}

func (s *HandlerTestSuite) TestCreateInvalidBody() {
	rec := s.do(http.MethodPost, "/v1/rooms", `{invalid}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid request body")
}

func (s *HandlerTestSuite) TestOversizedBodyIsRejected() {
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rec := s.do(http.MethodPost, "/v1/rooms", body)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Contains(rec.Body.String(), "request body too large")
}

func (s *HandlerTestSuite) TestJoin() {
	s.mockService.EXPECT().
		JoinRoom(gomock.Any(), &room.JoinRoomInput{Code: "4821", Name: "Bob"}).
		Return(&room.JoinRoomOutput{Room: s.room, PlayerID: "p2", Rejoined: true}, nil)

	rec := s.do(http.MethodPost, "/v1/rooms/4821/join", `{"name":"Bob"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp JoinResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("p2", resp.PlayerID)
	s.True(resp.Rejoined)
}

func (s *HandlerTestSuite) TestGet() {
	s.mockService.EXPECT().
		GetRoom(gomock.Any(), &room.GetRoomInput{Code: "4821"}).
		Return(&room.GetRoomOutput{Room: s.room}, nil)

	rec := s.do(http.MethodGet, "/v1/rooms/4821", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"code":"4821"`)
}

func (s *HandlerTestSuite) TestList() {
	s.mockService.EXPECT().
		ListRooms(gomock.Any(), &room.ListRoomsInput{}).
		Return(&room.ListRoomsOutput{Rooms: []*models.Room{s.room}}, nil)

	rec := s.do(http.MethodGet, "/v1/rooms", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp RoomsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Rooms, 1)
}

func (s *HandlerTestSuite) TestHostActionsPassPlayerID() {
	s.Run("start", func() {
		s.mockService.EXPECT().
			StartRound(gomock.Any(), &room.StartRoundInput{Code: "4821", PlayerID: "p1"}).
			Return(&room.StartRoundOutput{Room: s.room}, nil)
		rec := s.do(http.MethodPost, "/v1/rooms/4821/start", `{"playerId":"p1"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("advance", func() {
		s.mockService.EXPECT().
			AdvancePhase(gomock.Any(), &room.AdvancePhaseInput{Code: "4821", PlayerID: "p1"}).
			Return(&room.AdvancePhaseOutput{Room: s.room}, nil)
		rec := s.do(http.MethodPost, "/v1/rooms/4821/advance", `{"playerId":"p1"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("expire", func() {
		s.mockService.EXPECT().
			ExpireTimer(gomock.Any(), &room.ExpireTimerInput{Code: "4821", PlayerID: "p1"}).
			Return(&room.ExpireTimerOutput{Room: s.room, Expired: true}, nil)
		rec := s.do(http.MethodPost, "/v1/rooms/4821/expire", `{"playerId":"p1"}`)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"expired":true`)
	})

	s.Run("categories", func() {
		s.mockService.EXPECT().
			ToggleCategory(gomock.Any(), &room.ToggleCategoryInput{Code: "4821", PlayerID: "p1", CategoryID: "food"}).
			Return(&room.ToggleCategoryOutput{Room: s.room}, nil)
		rec := s.do(http.MethodPost, "/v1/rooms/4821/categories", `{"playerId":"p1","categoryId":"food"}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("judge", func() {
		s.mockService.EXPECT().
			AssignJudge(gomock.Any(), &room.AssignJudgeInput{Code: "4821", PlayerID: "p1", JudgeID: "p2"}).
			Return(&room.AssignJudgeOutput{Room: s.room}, nil)
		rec := s.do(http.MethodPost, "/v1/rooms/4821/judge", `{"playerId":"p1","judgeId":"p2"}`)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *HandlerTestSuite) TestSettingsOnlySetsPresentFields() {
	s.mockService.EXPECT().
		UpdateSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *room.UpdateSettingsInput) (*room.UpdateSettingsOutput, error) {
			s.Equal("p1", input.PlayerID)
			s.Require().NotNil(input.TimeMode)
			s.Equal(models.TimeModeTimed, *input.TimeMode)
			s.Require().NotNil(input.RoundDuration)
			s.Equal(300, *input.RoundDuration)
			s.Nil(input.ImpostersCount)
			s.Nil(input.WordSource)
			return &room.UpdateSettingsOutput{Room: s.room}, nil
		})

	rec := s.do(http.MethodPost, "/v1/rooms/4821/settings", `{"playerId":"p1","timeMode":"TIMED","roundDuration":300}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestJudgeWord() {
	s.mockService.EXPECT().
		SubmitJudgeWord(gomock.Any(), &room.SubmitJudgeWordInput{
			Code:     "4821",
			PlayerID: "p5",
			Category: "Animals",
			Word:     "Camel",
		}).
		Return(&room.SubmitJudgeWordOutput{Room: s.room}, nil)

	rec := s.do(http.MethodPost, "/v1/rooms/4821/judge-word", `{"playerId":"p5","category":"Animals","word":"Camel"}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestVoteIncludesResult() {
	result := &votes.Result{
		Counts:         map[string]int{"p2": 3},
		MaxVotes:       3,
		VotedOutIDs:    []string{"p2"},
		TotalImposters: 1,
		Winner:         models.WinnerPlayers,
	}
	s.mockService.EXPECT().
		CastVote(gomock.Any(), &room.CastVoteInput{Code: "4821", PlayerID: "p1", TargetID: "p2"}).
		Return(&room.CastVoteOutput{Room: s.room, Result: result}, nil)

	rec := s.do(http.MethodPost, "/v1/rooms/4821/vote", `{"playerId":"p1","targetId":"p2"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"winner":"PLAYERS"`)
	s.Contains(rec.Body.String(), `"votedOutIds":["p2"]`)
}

func (s *HandlerTestSuite) TestErrorStatuses() {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "room not found", err: room.ErrRoomNotFound, expected: http.StatusNotFound},
		{name: "player not found", err: room.ErrPlayerNotFound, expected: http.StatusNotFound},
		{name: "not host", err: room.ErrNotHost, expected: http.StatusForbidden},
		{name: "not judge", err: room.ErrNotJudge, expected: http.StatusForbidden},
		{name: "invalid phase", err: room.ErrInvalidPhase, expected: http.StatusConflict},
		{name: "not enough players", err: room.ErrNotEnoughPlayers, expected: http.StatusConflict},
		{name: "judge required", err: room.ErrJudgeRequired, expected: http.StatusConflict},
		{name: "invalid settings", err: room.ErrInvalidSettings, expected: http.StatusBadRequest},
		{name: "invalid vote", err: room.ErrInvalidVote, expected: http.StatusBadRequest},
		{name: "wrapped invalid room", err: errors.Join(room.ErrInvalidRoom, errors.New("no host")), expected: http.StatusBadRequest},
		{name: "no room code", err: room.ErrNoRoomCode, expected: http.StatusServiceUnavailable},
		{name: "store failure", err: errors.New("redis down"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().
				StartRound(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/v1/rooms/4821/start", `{"playerId":"p1"}`)

			s.Equal(tc.expected, rec.Code)
			var resp errorResponse
			s.Require().NoError(json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&resp))
			s.Equal(tc.err.Error(), resp.Error)
		})
	}
}

func (s *HandlerTestSuite) TestPreflight() {
	rec := s.do(http.MethodOptions, "/v1/rooms/4821/start", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
