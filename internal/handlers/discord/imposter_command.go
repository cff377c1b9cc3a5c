package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/room"
	"github.com/bwmarrin/discordgo"
)

// ImposterCommand handles the /imposter command
type ImposterCommand struct {
	BaseCommand
	bot *Bot
}

// NewImposterCommand creates a new imposter command handler
func NewImposterCommand(bot *Bot) *ImposterCommand {
	durationChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.RoundDurationOptions))
	for _, seconds := range models.RoundDurationOptions {
		durationChoices = append(durationChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%d min", seconds/60),
			Value: seconds,
		})
	}
	minImposters := float64(1)

	return &ImposterCommand{
		BaseCommand: BaseCommand{
			Name:        "imposter",
			Description: "Find the impostor who doesn't know the word",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a room in this channel and become its host",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "location",
							Description: "Where you are playing from",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join this channel's room or a room by code",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Four digit room code",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Deal roles and start a round (host)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "advance",
					Description: "Move to the next phase (host)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "vote",
					Description: "Vote for who you think is the impostor",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Your suspect",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "judge",
					Description: "Pick the judge who writes the word, or clear it (host)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Leave empty to clear the judge",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "word",
					Description: "See your word, or submit the round's word as judge",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Category shown to impostors (judge)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "secret",
							Description: "The secret word (judge)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "room",
					Description: "Show this channel's room",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Change the room settings (host)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "imposters",
							Description: "How many impostors",
							MinValue:    &minImposters,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "duration",
							Description: "Discussion length",
							Choices:     durationChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "timed",
							Description: "Run a countdown during discussion",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "judge_mode",
							Description: "A judge writes the word instead of the word bank",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "category",
					Description: "Toggle a word bank category (host)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Category ID, e.g. country",
							Required:    true,
						},
					},
				},
			},
		},
		bot: bot,
	}
}

// Handle processes a Discord interaction for the imposter command
func (c *ImposterCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	if sub.Name == "create" {
		return c.bot.createRoom(s, i, stringOption(opts, "location"))
	}

	if sub.Name == "join" {
		code := stringOption(opts, "code")
		if code == "" {
			found, ok := c.bot.sessions.roomFor(i.ChannelID)
			if !ok {
				return c.bot.respondError(s, i, room.ErrRoomNotFound)
			}
			code = found
		}
		return c.bot.joinRoom(s, i, code)
	}

	code, ok := c.bot.sessions.roomFor(i.ChannelID)
	if !ok {
		return c.bot.respondError(s, i, room.ErrRoomNotFound)
	}

	switch sub.Name {
	case "start":
		return c.bot.startRound(s, i, code)
	case "advance":
		return c.bot.advancePhase(s, i, code)
	case "vote":
		return c.handleVote(s, i, code, opts)
	case "judge":
		return c.handleJudge(s, i, code, opts)
	case "word":
		return c.handleWord(s, i, code, opts)
	case "room":
		return c.handleRoom(s, i, code)
	case "settings":
		return c.handleSettings(s, i, code, opts)
	case "category":
		return c.handleCategory(s, i, code, opts)
	default:
		return RespondWithEphemeralMessage(s, i, "Unknown subcommand: "+sub.Name)
	}
}

type options = map[string]*discordgo.ApplicationCommandInteractionDataOption

func stringOption(opts options, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// userPlayerID maps a Discord user option to that user's player in the room
func (c *ImposterCommand) userPlayerID(opts options, name, code string) (string, bool) {
	opt, ok := opts[name]
	if !ok {
		return "", false
	}
	return c.bot.sessions.playerFor(code, opt.UserValue(nil).ID)
}

func (c *ImposterCommand) handleVote(s *discordgo.Session, i *discordgo.InteractionCreate, code string, opts options) error {
	targetID, ok := c.userPlayerID(opts, "player", code)
	if !ok {
		return c.bot.respondError(s, i, room.ErrInvalidVote)
	}
	return c.bot.castVote(s, i, code, targetID)
}

func (c *ImposterCommand) handleJudge(s *discordgo.Session, i *discordgo.InteractionCreate, code string, opts options) error {
	playerID, err := c.bot.playerID(i, code)
	if err != nil {
		return c.bot.respondError(s, i, err)
	}

	judgeID := ""
	if _, given := opts["player"]; given {
		id, ok := c.userPlayerID(opts, "player", code)
		if !ok {
			return c.bot.respondError(s, i, room.ErrPlayerNotFound)
		}
		judgeID = id
	}

	ctx, cancel := c.bot.requestContext()
	defer cancel()

	if _, err := c.bot.roomService.AssignJudge(ctx, &room.AssignJudgeInput{
		Code:     code,
		PlayerID: playerID,
		JudgeID:  judgeID,
	}); err != nil {
		return c.bot.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, models.JudgeMarker)
}

// handleWord submits the judge's word when one is given, otherwise reveals the caller's role
func (c *ImposterCommand) handleWord(s *discordgo.Session, i *discordgo.InteractionCreate, code string, opts options) error {
	category, word := stringOption(opts, "category"), stringOption(opts, "secret")
	if category == "" && word == "" {
		return c.bot.revealWord(s, i, code)
	}

	playerID, err := c.bot.playerID(i, code)
	if err != nil {
		return c.bot.respondError(s, i, err)
	}

	ctx, cancel := c.bot.requestContext()
	defer cancel()

	if _, err := c.bot.roomService.SubmitJudgeWord(ctx, &room.SubmitJudgeWordInput{
		Code:     code,
		PlayerID: playerID,
		Category: category,
		Word:     word,
	}); err != nil {
		return c.bot.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "✅ "+word)
}

func (c *ImposterCommand) handleRoom(s *discordgo.Session, i *discordgo.InteractionCreate, code string) error {
	ctx, cancel := c.bot.requestContext()
	defer cancel()

	out, err := c.bot.roomService.GetRoom(ctx, &room.GetRoomInput{Code: code})
	if err != nil {
		return c.bot.respondError(s, i, err)
	}
	return RespondWithEmbed(s, i, renderRoomEmbed(out.Room, "Min Imposter "+code, "", c.bot.clock.Now()), renderRoomComponents(out.Room), true)
}

func (c *ImposterCommand) handleSettings(s *discordgo.Session, i *discordgo.InteractionCreate, code string, opts options) error {
	playerID, err := c.bot.playerID(i, code)
	if err != nil {
		return c.bot.respondError(s, i, err)
	}

	input := &room.UpdateSettingsInput{Code: code, PlayerID: playerID}
	if opt, ok := opts["imposters"]; ok {
		n := int(opt.IntValue())
		input.ImpostersCount = &n
	}
	if opt, ok := opts["duration"]; ok {
		n := int(opt.IntValue())
		input.RoundDuration = &n
	}
	if opt, ok := opts["timed"]; ok {
		mode := models.TimeModeOpen
		if opt.BoolValue() {
			mode = models.TimeModeTimed
		}
		input.TimeMode = &mode
	}
	if opt, ok := opts["judge_mode"]; ok {
		source := models.WordSourceSystem
		if opt.BoolValue() {
			source = models.WordSourceJudge
		}
		input.WordSource = &source
	}

	ctx, cancel := c.bot.requestContext()
	defer cancel()

	out, err := c.bot.roomService.UpdateSettings(ctx, input)
	if err != nil {
		return c.bot.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "⚙️ "+renderSettings(out.Room))
}

func (c *ImposterCommand) handleCategory(s *discordgo.Session, i *discordgo.InteractionCreate, code string, opts options) error {
	playerID, err := c.bot.playerID(i, code)
	if err != nil {
		return c.bot.respondError(s, i, err)
	}

	ctx, cancel := c.bot.requestContext()
	defer cancel()

	out, err := c.bot.roomService.ToggleCategory(ctx, &room.ToggleCategoryInput{
		Code:       code,
		PlayerID:   playerID,
		CategoryID: stringOption(opts, "id"),
	})
	if err != nil {
		return c.bot.respondError(s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, "🗂️ "+strings.Join(out.Room.Categories, ", "))
}
