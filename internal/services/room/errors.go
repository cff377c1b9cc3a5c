package room

// RoomError is a custom error type for room and round errors
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound      RoomError = "room not found"
	ErrPlayerNotFound    RoomError = "player not found"
	ErrNameRequired      RoomError = "player name is required"
	ErrNotHost           RoomError = "only the host can do that"
	ErrInvalidPhase      RoomError = "action not allowed in the current phase"
	ErrJudgeRequired     RoomError = "a judge must be assigned for judge rounds"
	ErrNotEnoughPlayers  RoomError = "not enough players to start"
	ErrTooManyImposters  RoomError = "imposters must be fewer than the non-judge players"
	ErrInvalidSettings   RoomError = "invalid room settings"
	ErrAlreadyVoted      RoomError = "player has already voted"
	ErrInvalidVote       RoomError = "invalid vote target"
	ErrNotJudge          RoomError = "only the judge can do that"
	ErrWordRequired      RoomError = "category and word are required"
	ErrWaitingForJudge   RoomError = "waiting for the judge to submit a word"
	ErrInvalidRoom       RoomError = "room breaks a structural invariant"
	ErrNoRoomCode        RoomError = "no free room code available"
	ErrNilInput          RoomError = "input cannot be nil"
	ErrNilConfig         RoomError = "config cannot be nil"
	ErrNilRoomRepo       RoomError = "room repository cannot be nil"
	ErrNilWordsRepo      RoomError = "words repository cannot be nil"
	ErrNilRandom         RoomError = "random source cannot be nil"
	ErrNilClock          RoomError = "clock cannot be nil"
	ErrNilUUIDGenerator  RoomError = "UUID generator cannot be nil"
	ErrUnsupportedLocale RoomError = "unsupported language"
)
