package room

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/minimposter/internal/common/clock"
	"github.com/KirkDiggler/minimposter/internal/common/uuid"
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/random"
	roomRepo "github.com/KirkDiggler/minimposter/internal/repositories/room"
	wordsRepo "github.com/KirkDiggler/minimposter/internal/repositories/words"
	"github.com/KirkDiggler/minimposter/internal/roles"
	"github.com/KirkDiggler/minimposter/internal/timer"
	"github.com/KirkDiggler/minimposter/internal/votes"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	roomRepo        roomRepo.Repository
	wordsRepo       wordsRepo.Repository
	random          random.Source
	assigner        *roles.Assigner
	clock           clock.Clock
	uuid            uuid.UUID
	language        models.Language
	maxCodeAttempts int
	logger          zerolog.Logger
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.WordsRepo == nil {
		return nil, ErrNilWordsRepo
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	language := cfg.Language
	if language == "" {
		language = models.LanguageArabic
	}
	if !language.IsValid() {
		return nil, ErrUnsupportedLocale
	}

	maxAttempts := cfg.MaxCodeAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxCodeAttempts
	}

	return &service{
		roomRepo:        cfg.RoomRepo,
		wordsRepo:       cfg.WordsRepo,
		random:          cfg.Random,
		assigner:        roles.New(&roles.Config{Random: cfg.Random}),
		clock:           cfg.Clock,
		uuid:            cfg.UUIDGenerator,
		language:        language,
		maxCodeAttempts: maxAttempts,
		logger:          cfg.Logger,
	}, nil
}

// CreateRoom opens a room in the lobby with the default settings
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.HostName)
	if name == "" {
		return nil, ErrNameRequired
	}

	code, err := s.allocateCode(ctx)
	if err != nil {
		return nil, err
	}

	host := &models.Player{
		ID:       s.uuid.NewUUID(),
		Name:     name,
		IsHost:   true,
		Location: input.Location,
	}

	room := &models.Room{
		Code:           code,
		Categories:     []string{models.DefaultCategoryID},
		ImpostersCount: models.DefaultImpostersCount,
		RoundDuration:  models.DefaultRoundDuration,
		WordSource:     models.WordSourceSystem,
		TimeMode:       models.TimeModeTimed,
		Phase:          models.PhaseLobby,
		Players:        []*models.Player{host},
		CreatedAt:      s.clock.Now(),
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", code).
		Str("player", host.ID).
		Msg("room created")

	return &CreateRoomOutput{
		Room:     room,
		PlayerID: host.ID,
	}, nil
}

// allocateCode draws four-digit codes until it finds one that is not taken
func (s *service) allocateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxCodeAttempts; attempt++ {
		code := strconv.Itoa(minRoomCode + s.random.Intn(roomCodeSpan))

		exists, err := s.roomRepo.RoomExists(ctx, &roomRepo.RoomExistsInput{Code: code})
		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrNoRoomCode
}

// JoinRoom adds a player; a matching name reuses the existing player
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	room, err := s.loadRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if existing := room.FindPlayerByName(name); existing != nil {
		return &JoinRoomOutput{
			Room:     room,
			PlayerID: existing.ID,
			Rejoined: true,
		}, nil
	}

	player := &models.Player{
		ID:       s.uuid.NewUUID(),
		Name:     name,
		Location: input.Location,
	}
	room.Players = append(room.Players, player)

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", room.Code).
		Str("player", player.ID).
		Int("players", len(room.Players)).
		Msg("player joined")

	return &JoinRoomOutput{
		Room:     room,
		PlayerID: player.ID,
	}, nil
}

// GetRoom loads a room by code
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

// UpdateRoom is the raw replace path; it only enforces structural invariants
func (s *service) UpdateRoom(ctx context.Context, input *UpdateRoomInput) (*UpdateRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Room == nil {
		return nil, ErrInvalidRoom
	}

	room := input.Room.Clone()
	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &UpdateRoomOutput{Room: room}, nil
}

// ObserveRoom subscribes first and then loads, so no save between the two is lost
func (s *service) ObserveRoom(ctx context.Context, input *ObserveRoomInput) (*ObserveRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	watchCtx, cancel := context.WithCancel(ctx)

	updates, err := s.roomRepo.WatchRoom(watchCtx, &roomRepo.WatchRoomInput{Code: input.Code})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to watch room: %w", err)
	}

	current, err := s.loadRoom(watchCtx, input.Code)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan *models.Room, 1)
	go func() {
		defer close(out)
		defer cancel()

		select {
		case out <- current:
		case <-watchCtx.Done():
			return
		}

		for {
			select {
			case room, ok := <-updates:
				if !ok {
					return
				}
				select {
				case out <- room:
				case <-watchCtx.Done():
					return
				}
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return &ObserveRoomOutput{Updates: out}, nil
}

// ToggleCategory flips a category in the selection; the last one cannot be removed
func (s *service) ToggleCategory(ctx context.Context, input *ToggleCategoryInput) (*ToggleCategoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.CategoryID == "" {
		return nil, ErrInvalidSettings
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}

	if room.HasCategory(input.CategoryID) {
		if len(room.Categories) == 1 {
			return &ToggleCategoryOutput{Room: room}, nil
		}
		kept := make([]string, 0, len(room.Categories)-1)
		for _, c := range room.Categories {
			if c != input.CategoryID {
				kept = append(kept, c)
			}
		}
		room.Categories = kept
	} else {
		room.Categories = append(room.Categories, input.CategoryID)
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &ToggleCategoryOutput{Room: room}, nil
}

// UpdateSettings applies every provided setting, or none if any is invalid
func (s *service) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ImpostersCount != nil && *input.ImpostersCount < 1 {
		return nil, ErrInvalidSettings
	}
	if input.RoundDuration != nil && *input.RoundDuration < 1 {
		return nil, ErrInvalidSettings
	}
	if input.TimeMode != nil && !input.TimeMode.IsValid() {
		return nil, ErrInvalidSettings
	}
	if input.WordSource != nil && !input.WordSource.IsValid() {
		return nil, ErrInvalidSettings
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}

	if input.ImpostersCount != nil {
		room.ImpostersCount = *input.ImpostersCount
	}
	if input.RoundDuration != nil {
		room.RoundDuration = *input.RoundDuration
	}
	if input.TimeMode != nil {
		room.TimeMode = *input.TimeMode
	}
	if input.WordSource != nil {
		room.WordSource = *input.WordSource
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &UpdateSettingsOutput{Room: room}, nil
}

// AssignJudge sets the judge flag on exactly one player, or on nobody
func (s *service) AssignJudge(ctx context.Context, input *AssignJudgeInput) (*AssignJudgeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}

	if input.JudgeID != "" && room.FindPlayer(input.JudgeID) == nil {
		return nil, ErrPlayerNotFound
	}

	for _, p := range room.Players {
		p.IsJudge = p.ID == input.JudgeID
		if p.IsJudge {
			// a judge never carries last round's role
			p.IsImposter = false
			p.VoteID = ""
			p.Word = nil
		}
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	return &AssignJudgeOutput{Room: room}, nil
}

// StartRound deals roles for a SYSTEM round, or prepares a JUDGE round for the judge's word
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}

	minPlayers := MinPlayersSystem
	if room.WordSource == models.WordSourceJudge {
		minPlayers = MinPlayersJudge
	}
	if len(room.Players) < minPlayers {
		return nil, ErrNotEnoughPlayers
	}

	if room.WordSource == models.WordSourceJudge && room.Judge() == nil {
		return nil, ErrJudgeRequired
	}

	if room.ImpostersCount >= len(room.NonJudgePlayers()) {
		return nil, ErrTooManyImposters
	}

	switch room.WordSource {
	case models.WordSourceJudge:
		for _, p := range room.Players {
			p.Word = nil
			p.IsImposter = false
			p.HasVoted = p.IsJudge
			p.VoteID = ""
		}
		room.SecretWord = ""
		room.CurrentCategoryName = ""
	default:
		pair, categoryName, err := s.pickWord(ctx, room.Categories)
		if err != nil {
			return nil, err
		}
		room.Players = s.assigner.Assign(room.Players, room.ImpostersCount, pair.Secret)
		room.SecretWord = pair.Secret
		room.CurrentCategoryName = categoryName
	}

	room.Phase = models.PhaseRoleReveal
	room.Winner = models.WinnerNone
	room.TimerEndsAt = nil

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", room.Code).
		Str("word_source", string(room.WordSource)).
		Int("players", len(room.Players)).
		Int("imposters", room.ImpostersCount).
		Msg("round started")

	return &StartRoundOutput{Room: room}, nil
}

// pickWord chooses a word from the selected categories, widening to the whole
// bank and then the built-in bank when nothing matches
func (s *service) pickWord(ctx context.Context, categories []string) (*models.WordPair, string, error) {
	bank, err := s.wordsRepo.GetSnapshot(ctx, &wordsRepo.GetSnapshotInput{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to load word bank: %w", err)
	}

	candidates := bank.WordsIn(categories)
	if len(candidates) == 0 {
		candidates = bank.Words
	}
	if len(candidates) == 0 {
		bank = wordsRepo.DefaultBank()
		candidates = bank.Words
	}

	pair := candidates[s.random.Intn(len(candidates))]

	name := models.GeneralLabel(s.language)
	if category := bank.FindCategory(pair.CategoryID); category != nil {
		name = category.Label(s.language)
	}

	return pair, name, nil
}

// SubmitJudgeWord deals roles around the judge's word
func (s *service) SubmitJudgeWord(ctx context.Context, input *SubmitJudgeWordInput) (*SubmitJudgeWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseRoleReveal || room.WordSource != models.WordSourceJudge || room.SecretWord != "" {
		return nil, ErrInvalidPhase
	}

	player := room.FindPlayer(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if !player.IsJudge {
		return nil, ErrNotJudge
	}

	category := strings.TrimSpace(input.Category)
	word := strings.TrimSpace(input.Word)
	if category == "" || word == "" {
		return nil, ErrWordRequired
	}

	room.Players = s.assigner.Assign(room.Players, room.ImpostersCount, word)
	room.SecretWord = word
	room.CurrentCategoryName = category

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", room.Code).
		Str("player", player.ID).
		Msg("judge word submitted")

	return &SubmitJudgeWordOutput{Room: room}, nil
}

// AdvancePhase moves the round forward on the host's command. In the lobby it does nothing.
func (s *service) AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	from := room.Phase
	switch room.Phase {
	case models.PhaseLobby:
		return &AdvancePhaseOutput{Room: room}, nil
	case models.PhaseRoleReveal:
		if room.WaitingForJudge() {
			return nil, ErrWaitingForJudge
		}
		room.Phase = models.PhaseDiscussion
		room.TimerEndsAt = nil
		if room.TimeMode == models.TimeModeTimed {
			endsAt := s.clock.Now().Add(time.Duration(room.RoundDuration) * time.Second)
			room.TimerEndsAt = &endsAt
		}
	case models.PhaseDiscussion:
		room.Phase = models.PhaseVoting
		room.TimerEndsAt = nil
	case models.PhaseResults:
		room.Phase = models.PhaseLobby
		room.Winner = models.WinnerNone
	default:
		return nil, ErrInvalidPhase
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", room.Code).
		Str("from", from.String()).
		Str("phase", room.Phase.String()).
		Msg("phase advanced")

	return &AdvancePhaseOutput{Room: room}, nil
}

// ExpireTimer ends a timed discussion whose deadline has passed; otherwise it changes nothing
func (s *service) ExpireTimer(ctx context.Context, input *ExpireTimerInput) (*ExpireTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadAsHost(ctx, input.Code, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if !timer.Running(room) || timer.RoomTimeLeft(room, s.clock.Now()) > 0 {
		return &ExpireTimerOutput{Room: room}, nil
	}

	room.Phase = models.PhaseVoting
	room.TimerEndsAt = nil

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("room", room.Code).
		Msg("discussion timer expired, voting started")

	return &ExpireTimerOutput{
		Room:    room,
		Expired: true,
	}, nil
}

// CastVote records the caller's vote; the last vote resolves the round
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	room, err := s.loadRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if room.Phase != models.PhaseVoting {
		return nil, ErrInvalidPhase
	}

	voter := room.FindPlayer(input.PlayerID)
	if voter == nil {
		return nil, ErrPlayerNotFound
	}
	if voter.IsJudge {
		return nil, ErrInvalidVote
	}
	if voter.HasVoted {
		return nil, ErrAlreadyVoted
	}

	target := room.FindPlayer(input.TargetID)
	if target == nil || target.IsJudge || target.ID == voter.ID {
		return nil, ErrInvalidVote
	}

	voter.HasVoted = true
	voter.VoteID = target.ID

	var result *votes.Result
	if room.AllVoted() {
		result = votes.Resolve(room.Players)
		room.Players = votes.ApplyScores(room.Players, result.Winner)
		room.Phase = models.PhaseResults
		room.Winner = result.Winner
	}

	if err := s.saveRoom(ctx, room); err != nil {
		return nil, err
	}

	if result != nil {
		s.logger.Info().
			Str("room", room.Code).
			Strs("voted_out", result.VotedOutIDs).
			Int("caught", len(result.CaughtImposterIDs)).
			Str("winner", string(result.Winner)).
			Msg("round resolved")
	}

	return &CastVoteOutput{
		Room:   room,
		Result: result,
	}, nil
}

// ListRooms returns every stored room, most recently active first
func (s *service) ListRooms(ctx context.Context, input *ListRoomsInput) (*ListRoomsOutput, error) {
	out, err := s.roomRepo.ListRooms(ctx, &roomRepo.ListRoomsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return &ListRoomsOutput{Rooms: out.Rooms}, nil
}

// ReapStaleRooms deletes every room idle for longer than MaxIdle and reports the codes removed
func (s *service) ReapStaleRooms(ctx context.Context, input *ReapStaleRoomsInput) (*ReapStaleRoomsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.MaxIdle <= 0 {
		return nil, ErrInvalidSettings
	}

	stale, err := s.roomRepo.ListStaleRooms(ctx, &roomRepo.ListStaleRoomsInput{
		Before: s.clock.Now().Add(-input.MaxIdle),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stale rooms: %w", err)
	}

	reaped := make([]string, 0, len(stale.Codes))
	for _, code := range stale.Codes {
		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{Code: code}); err != nil {
			s.logger.Warn().Err(err).Str("room", code).Msg("failed to delete stale room")
			continue
		}
		reaped = append(reaped, code)
	}

	if len(reaped) > 0 {
		s.logger.Info().Int("count", len(reaped)).Msg("stale rooms reaped")
	}

	return &ReapStaleRoomsOutput{Codes: reaped}, nil
}

// loadRoom returns a private copy of the stored room
func (s *service) loadRoom(ctx context.Context, code string) (*models.Room, error) {
	if code == "" {
		return nil, ErrRoomNotFound
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: code})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room.Clone(), nil
}

// loadAsHost loads the room and checks the caller is its host
func (s *service) loadAsHost(ctx context.Context, code, playerID string) (*models.Room, error) {
	room, err := s.loadRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	player := room.FindPlayer(playerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if !player.IsHost {
		return nil, ErrNotHost
	}

	return room, nil
}

// saveRoom stamps activity, checks invariants, and replaces the stored record
func (s *service) saveRoom(ctx context.Context, room *models.Room) error {
	room.LastActivity = s.clock.Now()

	if err := room.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoom, err)
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}
