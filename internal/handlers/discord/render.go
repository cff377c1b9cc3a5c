package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/timer"
	"github.com/bwmarrin/discordgo"
)

// Button and select menu custom IDs
const (
	ButtonJoinRoom   = "join_room"
	ButtonStartRound = "start_round"
	ButtonRevealWord = "reveal_word"
	ButtonAdvance    = "advance_phase"
	SelectVote       = "cast_vote"
)

// Discord caps a select menu at 25 options
const maxSelectOptions = 25

const (
	colorLobby   = 0x5865f2
	colorRound   = 0xfee75c
	colorVoting  = 0xed4245
	colorResults = 0x57f287
	colorError   = 0xff0000
)

func phaseColor(phase models.Phase) int {
	switch phase {
	case models.PhaseRoleReveal, models.PhaseDiscussion:
		return colorRound
	case models.PhaseVoting:
		return colorVoting
	case models.PhaseResults:
		return colorResults
	default:
		return colorLobby
	}
}

// renderPlayerList shows one player per line with host, judge and vote markers
func renderPlayerList(r *models.Room) string {
	var b strings.Builder
	for _, p := range r.Players {
		b.WriteString("**")
		b.WriteString(p.Name)
		b.WriteString("**")
		if p.IsHost {
			b.WriteString(" 👑")
		}
		if p.IsJudge {
			b.WriteString(" " + models.JudgeMarker)
		}
		if r.Phase == models.PhaseVoting && !p.IsJudge && p.HasVoted {
			b.WriteString(" ✅")
		}
		if r.Phase == models.PhaseResults && p.IsImposter {
			b.WriteString(" 🕵️")
		}
		b.WriteString(fmt.Sprintf(" (%d)\n", p.Score))
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

func renderSettings(r *models.Room) string {
	mode := string(r.TimeMode)
	if r.TimeMode == models.TimeModeTimed {
		mode = fmt.Sprintf("%s %ds", r.TimeMode, r.RoundDuration)
	}
	return fmt.Sprintf("%s: %d · %s · %s",
		"🕵️", r.ImpostersCount, mode, r.WordSource)
}

// renderRoomEmbed builds the status embed for a room snapshot
func renderRoomEmbed(r *models.Room, title, description string, now time.Time) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Code",
			Value:  r.Code,
			Inline: true,
		},
		{
			Name:   "Phase",
			Value:  string(r.Phase),
			Inline: true,
		},
		{
			Name:   "Settings",
			Value:  renderSettings(r),
			Inline: true,
		},
	}

	if timer.Running(r) {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "⏱️",
			Value:  fmt.Sprintf("<t:%d:R>", r.TimerEndsAt.Unix()),
			Inline: true,
		})
	}

	if r.CurrentCategoryName != "" && r.Phase != models.PhaseLobby {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Category",
			Value:  r.CurrentCategoryName,
			Inline: true,
		})
	}

	if r.Phase == models.PhaseResults && r.SecretWord != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Word",
			Value:  r.SecretWord,
			Inline: true,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("Players (%d)", len(r.Players)),
		Value:  renderPlayerList(r),
		Inline: false,
	})

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       phaseColor(r.Phase),
		Fields:      fields,
		Timestamp:   now.Format(time.RFC3339),
	}
}

// renderRoomComponents returns the buttons or vote menu for the room's phase
func renderRoomComponents(r *models.Room) []discordgo.MessageComponent {
	switch r.Phase {
	case models.PhaseLobby:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Join",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonJoinRoom,
						Emoji:    &discordgo.ComponentEmoji{Name: "🙋"},
					},
					discordgo.Button{
						Label:    "Start",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonStartRound,
						Emoji:    &discordgo.ComponentEmoji{Name: "🎮"},
					},
				},
			},
		}
	case models.PhaseRoleReveal, models.PhaseDiscussion:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "My word",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonRevealWord,
						Emoji:    &discordgo.ComponentEmoji{Name: "🤫"},
					},
					discordgo.Button{
						Label:    "Next",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonAdvance,
						Emoji:    &discordgo.ComponentEmoji{Name: "⏭️"},
					},
				},
			},
		}
	case models.PhaseVoting:
		return renderVoteMenu(r)
	case models.PhaseResults:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Back to lobby",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonAdvance,
						Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
					},
				},
			},
		}
	default:
		return nil
	}
}

// renderVoteMenu lists every non-judge player as a vote target
func renderVoteMenu(r *models.Room) []discordgo.MessageComponent {
	var options []discordgo.SelectMenuOption
	for _, p := range r.NonJudgePlayers() {
		if len(options) == maxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: p.Name,
			Value: p.ID,
			Emoji: &discordgo.ComponentEmoji{Name: "🗳️"},
		})
	}
	if len(options) == 0 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    SelectVote,
					Placeholder: "🕵️ ?",
					Options:     options,
				},
			},
		},
	}
}

// renderErrorEmbed is the red embed used for failures
func renderErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⚠️",
		Description: message,
		Color:       colorError,
	}
}
