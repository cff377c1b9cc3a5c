package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Watch handles GET /v1/ws/rooms/{code}; every room snapshot is sent as a JSON text frame
func (h *Handler) Watch(w http.ResponseWriter, r *http.Request) {
	roomCode := code(r)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Observe before upgrading so a missing room is still a plain 404
	out, err := h.rooms.ObserveRoom(ctx, &room.ObserveRoomInput{Code: roomCode})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("room", roomCode).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	h.logger.Debug().Str("room", roomCode).Msg("websocket watcher connected")

	go readPump(conn, cancel)
	writePump(ctx, conn, out.Updates)

	h.logger.Debug().Str("room", roomCode).Msg("websocket watcher disconnected")
}

// readPump discards client frames and cancels the watch once the client goes away
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, updates <-chan *models.Room) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case snapshot, ok := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(RoomResponse{Room: snapshot}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
