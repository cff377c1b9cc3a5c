package rest

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	roommocks "github.com/KirkDiggler/minimposter/internal/services/room/mocks"
)

func newTestServer(t *testing.T, service room.Service) *httptest.Server {
	t.Helper()

	h, err := NewHandler(&HandlerConfig{RoomService: service, Logger: zerolog.Nop()})
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(&RouterConfig{Handler: h, Logger: zerolog.Nop()}))
	t.Cleanup(server.Close)
	return server
}

func TestWatchStreamsSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := roommocks.NewMockService(ctrl)

	updates := make(chan *models.Room, 2)
	updates <- &models.Room{Code: "4821", Phase: models.PhaseLobby}
	updates <- &models.Room{Code: "4821", Phase: models.PhaseRoleReveal}

	service.EXPECT().
		ObserveRoom(gomock.Any(), &room.ObserveRoomInput{Code: "4821"}).
		Return(&room.ObserveRoomOutput{Updates: updates}, nil)

	server := newTestServer(t, service)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/ws/rooms/4821"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first, second RoomResponse
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, models.PhaseLobby, first.Room.Phase)
	assert.Equal(t, models.PhaseRoleReveal, second.Room.Phase)

	close(updates)
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestWatchUnknownRoomIsNotUpgraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := roommocks.NewMockService(ctrl)

	service.EXPECT().
		ObserveRoom(gomock.Any(), gomock.Any()).
		Return(nil, room.ErrRoomNotFound)

	server := newTestServer(t, service)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/ws/rooms/0000"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 404, resp.StatusCode)
}
