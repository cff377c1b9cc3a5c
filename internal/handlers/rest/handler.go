package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/minimposter/internal/services/room"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Handler serves the room endpoints
type Handler struct {
	rooms  room.Service
	logger zerolog.Logger
}

// HandlerConfig holds the handler's dependencies
type HandlerConfig struct {
	RoomService room.Service
	Logger      zerolog.Logger
}

// NewHandler creates a new room handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	return &Handler{
		rooms:  cfg.RoomService,
		logger: cfg.Logger,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// fail writes the status for err, logging only server-side failures
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeError(w, status, err.Error())
}

// maxBodyBytes caps every request body
const maxBodyBytes = 64 << 10

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func code(r *http.Request) string {
	return mux.Vars(r)["code"]
}

// Create handles POST /v1/rooms
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.CreateRoom(r.Context(), &room.CreateRoomInput{
		HostName: req.Name,
		Location: req.Location,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, JoinResponse{Room: out.Room, PlayerID: out.PlayerID})
}

// List handles GET /v1/rooms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.rooms.ListRooms(r.Context(), &room.ListRoomsInput{})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomsResponse{Rooms: out.Rooms})
}

// Join handles POST /v1/rooms/{code}/join
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.JoinRoom(r.Context(), &room.JoinRoomInput{
		Code:     code(r),
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, JoinResponse{Room: out.Room, PlayerID: out.PlayerID, Rejoined: out.Rejoined})
}

// Get handles GET /v1/rooms/{code}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	out, err := h.rooms.GetRoom(r.Context(), &room.GetRoomInput{Code: code(r)})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Start handles POST /v1/rooms/{code}/start
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.StartRound(r.Context(), &room.StartRoundInput{Code: code(r), PlayerID: req.PlayerID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Advance handles POST /v1/rooms/{code}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.AdvancePhase(r.Context(), &room.AdvancePhaseInput{Code: code(r), PlayerID: req.PlayerID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Expire handles POST /v1/rooms/{code}/expire
func (h *Handler) Expire(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.ExpireTimer(r.Context(), &room.ExpireTimerInput{Code: code(r), PlayerID: req.PlayerID})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ExpireResponse{Room: out.Room, Expired: out.Expired})
}

// Vote handles POST /v1/rooms/{code}/vote
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	var req VoteRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.CastVote(r.Context(), &room.CastVoteInput{
		Code:     code(r),
		PlayerID: req.PlayerID,
		TargetID: req.TargetID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, VoteResponse{Room: out.Room, Result: out.Result})
}

// JudgeWord handles POST /v1/rooms/{code}/judge-word
func (h *Handler) JudgeWord(w http.ResponseWriter, r *http.Request) {
	var req JudgeWordRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.SubmitJudgeWord(r.Context(), &room.SubmitJudgeWordInput{
		Code:     code(r),
		PlayerID: req.PlayerID,
		Category: req.Category,
		Word:     req.Word,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Settings handles POST /v1/rooms/{code}/settings
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.UpdateSettings(r.Context(), &room.UpdateSettingsInput{
		Code:           code(r),
		PlayerID:       req.PlayerID,
		ImpostersCount: req.ImpostersCount,
		RoundDuration:  req.RoundDuration,
		TimeMode:       req.TimeMode,
		WordSource:     req.WordSource,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Category handles POST /v1/rooms/{code}/categories
func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.ToggleCategory(r.Context(), &room.ToggleCategoryInput{
		Code:       code(r),
		PlayerID:   req.PlayerID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}

// Judge handles POST /v1/rooms/{code}/judge
func (h *Handler) Judge(w http.ResponseWriter, r *http.Request) {
	var req JudgeRequest
	if !decode(w, r, &req) {
		return
	}

	out, err := h.rooms.AssignJudge(r.Context(), &room.AssignJudgeInput{
		Code:     code(r),
		PlayerID: req.PlayerID,
		JudgeID:  req.JudgeID,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RoomResponse{Room: out.Room})
}
