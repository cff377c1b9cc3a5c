package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/minimposter/internal/common/clock"
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/messaging"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	"github.com/KirkDiggler/minimposter/internal/timer"
	"github.com/KirkDiggler/minimposter/internal/votes"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// requestTimeout bounds the service calls made for one interaction
const requestTimeout = 10 * time.Second

// channelPoster is the part of the Discord session that posts room updates
type channelPoster interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	channels    channelPoster
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	roomService room.Service
	messaging   messaging.Service
	clock       clock.Clock
	sessions    *sessions
	config      *Config
	logger      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	watchers map[string]*roomWatch
}

// roomWatch is one running room observer
type roomWatch struct {
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	RoomService room.Service
	Messaging   messaging.Service

	// Clock drives the discussion countdown; defaults to the system clock
	Clock clock.Clock

	// TimerInterval is how often running discussion timers are checked
	TimerInterval time.Duration

	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		session:     session,
		channels:    session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		roomService: cfg.RoomService,
		messaging:   cfg.Messaging,
		clock:       clk,
		sessions:    newSessions(),
		config:      cfg,
		logger:      cfg.Logger.With().Str("component", "discord").Logger(),
		ctx:         ctx,
		cancel:      cancel,
		watchers:    make(map[string]*roomWatch),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewImposterCommand(b)); err != nil {
		return fmt.Errorf("failed to register imposter command: %w", err)
	}

	b.logger.Info().Msg("bot is running")
	return nil
}

// Stop stops every room watcher, removes the commands and closes the connection
func (b *Bot) Stop() error {
	b.cancel()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		} else {
			b.logger.Info().Str("command", cmdName).Msg("deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, per guild when a guild ID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("id", createdCmd.ID).
		Str("guild", b.config.GuildID).
		Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks and the vote menu
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()

	code, ok := b.sessions.roomFor(i.ChannelID)
	if !ok {
		return b.respondError(s, i, room.ErrRoomNotFound)
	}

	switch data.CustomID {
	case ButtonJoinRoom:
		return b.joinRoom(s, i, code)
	case ButtonStartRound:
		return b.startRound(s, i, code)
	case ButtonRevealWord:
		return b.revealWord(s, i, code)
	case ButtonAdvance:
		return b.advancePhase(s, i, code)
	case SelectVote:
		if len(data.Values) == 0 {
			return b.respondError(s, i, room.ErrInvalidVote)
		}
		return b.castVote(s, i, code, data.Values[0])
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown component: %s", data.CustomID))
	}
}

func (b *Bot) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(b.ctx, requestTimeout)
}

// respondError explains err to the caller; unexpected errors are also logged
func (b *Bot) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	var roomErr room.RoomError
	if !errors.As(err, &roomErr) {
		b.logger.Error().Err(err).Str("channel", i.ChannelID).Msg("interaction failed")
	}

	ctx, cancel := b.requestContext()
	defer cancel()

	out, msgErr := b.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return RespondWithEphemeralMessage(s, i, err.Error())
	}
	return RespondWithEmbed(s, i, renderErrorEmbed(out.Message), nil, true)
}

// playerID maps the caller to their player in the room
func (b *Bot) playerID(i *discordgo.InteractionCreate, code string) (string, error) {
	userID, _ := interactionUser(i)
	id, ok := b.sessions.playerFor(code, userID)
	if !ok {
		return "", room.ErrPlayerNotFound
	}
	return id, nil
}

// createRoom makes the caller host of a new room bound to this channel
func (b *Bot) createRoom(s *discordgo.Session, i *discordgo.InteractionCreate, location string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	userID, name := interactionUser(i)
	out, err := b.roomService.CreateRoom(ctx, &room.CreateRoomInput{
		HostName: name,
		Location: location,
	})
	if err != nil {
		return b.respondError(s, i, err)
	}

	code := out.Room.Code
	if previous, ok := b.sessions.roomFor(i.ChannelID); ok {
		b.unwatch(previous)
		b.sessions.forget(previous)
	}
	b.sessions.bindChannel(i.ChannelID, code)
	b.sessions.bindPlayer(code, userID, out.PlayerID)

	if err := b.watch(i.ChannelID, code, out.PlayerID); err != nil {
		b.logger.Error().Err(err).Str("room", code).Msg("failed to watch room")
	}

	phase, err := b.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{Phase: out.Room.Phase})
	if err != nil {
		return b.respondError(s, i, err)
	}

	if err := RespondWithEmbed(s, i, renderRoomEmbed(out.Room, phase.Title, phase.Message, b.clock.Now()), renderRoomComponents(out.Room), false); err != nil {
		return err
	}

	// The response becomes the status message that every snapshot edits
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		b.logger.Warn().Err(err).Str("room", code).Msg("failed to fetch status message")
		return nil
	}
	b.sessions.setMessage(code, msg.ID)
	return nil
}

// joinRoom adds the caller to the room, or reattaches them by name
func (b *Bot) joinRoom(s *discordgo.Session, i *discordgo.InteractionCreate, code string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	userID, name := interactionUser(i)
	out, err := b.roomService.JoinRoom(ctx, &room.JoinRoomInput{
		Code: code,
		Name: name,
	})
	if err != nil {
		return b.respondError(s, i, err)
	}

	channelID, ok := b.sessions.channelFor(code)
	if !ok {
		channelID = i.ChannelID
		b.sessions.bindChannel(channelID, code)
	}
	b.sessions.bindPlayer(code, userID, out.PlayerID)
	b.follow(channelID, out.Room)

	b.logger.Info().
		Str("room", code).
		Str("player", out.PlayerID).
		Bool("rejoined", out.Rejoined).
		Msg("discord user joined room")

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✅ %s · %s", out.Room.Code, name))
}

func (b *Bot) startRound(s *discordgo.Session, i *discordgo.InteractionCreate, code string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	playerID, err := b.playerID(i, code)
	if err != nil {
		return b.respondError(s, i, err)
	}

	if _, err := b.roomService.StartRound(ctx, &room.StartRoundInput{Code: code, PlayerID: playerID}); err != nil {
		return b.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "🎮")
}

func (b *Bot) advancePhase(s *discordgo.Session, i *discordgo.InteractionCreate, code string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	playerID, err := b.playerID(i, code)
	if err != nil {
		return b.respondError(s, i, err)
	}

	out, err := b.roomService.AdvancePhase(ctx, &room.AdvancePhaseInput{Code: code, PlayerID: playerID})
	if err != nil {
		return b.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "⏭️ "+string(out.Room.Phase))
}

// revealWord privately shows the caller their role for the current round
func (b *Bot) revealWord(s *discordgo.Session, i *discordgo.InteractionCreate, code string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	playerID, err := b.playerID(i, code)
	if err != nil {
		return b.respondError(s, i, err)
	}

	out, err := b.roomService.GetRoom(ctx, &room.GetRoomInput{Code: code})
	if err != nil {
		return b.respondError(s, i, err)
	}
	if !out.Room.Phase.InRound() {
		return b.respondError(s, i, room.ErrInvalidPhase)
	}

	player := out.Room.FindPlayer(playerID)
	if player == nil {
		return b.respondError(s, i, room.ErrPlayerNotFound)
	}

	msg, err := b.messaging.GetRoleMessage(ctx, &messaging.GetRoleMessageInput{
		Player:       player,
		CategoryName: out.Room.CurrentCategoryName,
		SecretWord:   out.Room.SecretWord,
	})
	if err != nil {
		return b.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, msg.Message)
}

func (b *Bot) castVote(s *discordgo.Session, i *discordgo.InteractionCreate, code, targetID string) error {
	ctx, cancel := b.requestContext()
	defer cancel()

	playerID, err := b.playerID(i, code)
	if err != nil {
		return b.respondError(s, i, err)
	}

	out, err := b.roomService.CastVote(ctx, &room.CastVoteInput{
		Code:     code,
		PlayerID: playerID,
		TargetID: targetID,
	})
	if err != nil {
		return b.respondError(s, i, err)
	}

	target := out.Room.FindPlayer(targetID)
	name := targetID
	if target != nil {
		name = target.Name
	}
	return RespondWithEphemeralMessage(s, i, "🗳️ "+name)
}

// follow starts watching a room this process has not been watching yet,
// such as one created over HTTP or before a restart
func (b *Bot) follow(channelID string, r *models.Room) {
	b.mu.Lock()
	_, watching := b.watchers[r.Code]
	b.mu.Unlock()
	if watching {
		return
	}

	host := r.Host()
	if host == nil {
		b.logger.Warn().Str("room", r.Code).Msg("room has no host to run its timer")
		return
	}
	if err := b.watch(channelID, r.Code, host.ID); err != nil {
		b.logger.Error().Err(err).Str("room", r.Code).Msg("failed to watch room")
	}
}

// watch follows a room so phase changes are announced and its discussion timer expires
func (b *Bot) watch(channelID, code, hostID string) error {
	ctx, cancel := context.WithCancel(b.ctx)
	rw := &roomWatch{cancel: cancel}

	b.mu.Lock()
	if existing, ok := b.watchers[code]; ok {
		existing.cancel()
	}
	b.watchers[code] = rw
	b.mu.Unlock()

	observed, err := b.roomService.ObserveRoom(ctx, &room.ObserveRoomInput{Code: code})
	if err != nil {
		b.release(code, rw)
		return err
	}

	logger := b.logger.With().Str("room", code).Logger()
	w, err := timer.New(&timer.Config{
		Clock:    b.clock,
		Interval: b.config.TimerInterval,
		Logger:   logger,
		OnExpire: func(ctx context.Context, r *models.Room) {
			b.expire(ctx, code, hostID)
		},
	})
	if err != nil {
		b.release(code, rw)
		return err
	}

	snapshots := make(chan *models.Room)
	go w.Run(ctx, snapshots)
	go func() {
		defer b.release(code, rw)
		defer close(snapshots)

		var last models.Phase
		for r := range observed.Updates {
			if last != "" && r.Phase != last {
				b.announce(ctx, channelID, r)
			}
			last = r.Phase
			b.refreshMessage(channelID, r)

			select {
			case snapshots <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Debug().Str("channel", channelID).Msg("watching room")
	return nil
}

// release cancels a watch and forgets it unless a newer one replaced it
func (b *Bot) release(code string, rw *roomWatch) {
	rw.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.watchers[code] == rw {
		delete(b.watchers, code)
	}
}

func (b *Bot) unwatch(code string) {
	b.mu.Lock()
	rw, ok := b.watchers[code]
	b.mu.Unlock()
	if ok {
		b.release(code, rw)
	}
}

func (b *Bot) expire(ctx context.Context, code, hostID string) {
	out, err := b.roomService.ExpireTimer(ctx, &room.ExpireTimerInput{Code: code, PlayerID: hostID})
	if err != nil {
		b.logger.Warn().Err(err).Str("room", code).Msg("failed to expire discussion timer")
		return
	}
	b.logger.Info().Str("room", code).Bool("expired", out.Expired).Msg("discussion timer fired")
}

// announce posts the new phase, with the round result when it ends
func (b *Bot) announce(ctx context.Context, channelID string, r *models.Room) {
	phase, err := b.messaging.GetPhaseMessage(ctx, &messaging.GetPhaseMessageInput{
		Phase:       r.Phase,
		SecondsLeft: timer.RoomTimeLeft(r, b.clock.Now()),
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("room", r.Code).Msg("no announcement for phase")
		return
	}

	title, description := phase.Title, phase.Message
	if r.Phase == models.PhaseResults {
		result, err := b.messaging.GetResultMessage(ctx, resultInput(r))
		if err == nil {
			title, description = result.Title, result.Message
		}
	}

	_, err = b.channels.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderRoomEmbed(r, title, description, b.clock.Now())},
		Components: renderRoomComponents(r),
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("room", r.Code).Msg("failed to announce phase")
	}
}

// resultInput names who was voted out and who the impostors were
func resultInput(r *models.Room) *messaging.GetResultMessageInput {
	resolved := votes.Resolve(r.Players)

	input := &messaging.GetResultMessageInput{Winner: r.Winner}
	for _, id := range resolved.VotedOutIDs {
		if p := r.FindPlayer(id); p != nil {
			input.VotedOutNames = append(input.VotedOutNames, p.Name)
		}
	}
	for _, p := range r.Players {
		if p.IsImposter {
			input.ImposterNames = append(input.ImposterNames, p.Name)
		}
	}
	return input
}

// refreshMessage edits the room's status message to the latest snapshot
func (b *Bot) refreshMessage(channelID string, r *models.Room) {
	messageID, ok := b.sessions.messageFor(r.Code)
	if !ok {
		return
	}

	embeds := []*discordgo.MessageEmbed{renderRoomEmbed(r, "Min Imposter", "", b.clock.Now())}
	components := renderRoomComponents(r)
	_, err := b.channels.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		b.logger.Warn().Err(err).Str("room", r.Code).Msg("failed to update room message")
	}
}
