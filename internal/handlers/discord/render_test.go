package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/minimposter/internal/models"
)

type RenderTestSuite struct {
	suite.Suite
	now  time.Time
	room *models.Room
}

func (s *RenderTestSuite) SetupTest() {
	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.room = &models.Room{
		Code:           "4821",
		Categories:     []string{models.DefaultCategoryID},
		ImpostersCount: 1,
		RoundDuration:  180,
		WordSource:     models.WordSourceSystem,
		TimeMode:       models.TimeModeOpen,
		Phase:          models.PhaseLobby,
		Players: []*models.Player{
			{ID: "p1", Name: "Alice", IsHost: true, Score: 3},
			{ID: "p2", Name: "Bob"},
			{ID: "p3", Name: "Carol", IsJudge: true},
		},
	}
}

func (s *RenderTestSuite) fieldValue(embed *discordgo.MessageEmbed, name string) (string, bool) {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func (s *RenderTestSuite) TestRoomEmbedLobby() {
	embed := renderRoomEmbed(s.room, "title", "desc", s.now)

	s.Equal("title", embed.Title)
	s.Equal(colorLobby, embed.Color)

	code, ok := s.fieldValue(embed, "Code")
	s.Require().True(ok)
	s.Equal("4821", code)

	players, ok := s.fieldValue(embed, "Players (3)")
	s.Require().True(ok)
	s.Contains(players, "**Alice** 👑 (3)")
	s.Contains(players, "**Carol** "+models.JudgeMarker)

	_, ok = s.fieldValue(embed, "Word")
	s.False(ok)
	_, ok = s.fieldValue(embed, "⏱️")
	s.False(ok)
}

func (s *RenderTestSuite) TestRoomEmbedTimedDiscussion() {
	ends := s.now.Add(90 * time.Second)
	s.room.Phase = models.PhaseDiscussion
	s.room.TimeMode = models.TimeModeTimed
	s.room.TimerEndsAt = &ends
	s.room.CurrentCategoryName = "Countries"

	embed := renderRoomEmbed(s.room, "", "", s.now)

	countdown, ok := s.fieldValue(embed, "⏱️")
	s.Require().True(ok)
	s.Contains(countdown, "<t:")

	category, ok := s.fieldValue(embed, "Category")
	s.Require().True(ok)
	s.Equal("Countries", category)
}

func (s *RenderTestSuite) TestRoomEmbedResultsRevealsWordAndImpostors() {
	s.room.Phase = models.PhaseResults
	s.room.SecretWord = "Egypt"
	s.room.Players[1].IsImposter = true

	embed := renderRoomEmbed(s.room, "", "", s.now)

	word, ok := s.fieldValue(embed, "Word")
	s.Require().True(ok)
	s.Equal("Egypt", word)

	players, _ := s.fieldValue(embed, "Players (3)")
	s.Contains(players, "**Bob** 🕵️")
	s.Equal(colorResults, embed.Color)
}

func (s *RenderTestSuite) TestComponentsPerPhase() {
	s.Run("lobby offers join and start", func() {
		s.room.Phase = models.PhaseLobby
		row := renderRoomComponents(s.room)[0].(discordgo.ActionsRow)
		s.Require().Len(row.Components, 2)
		s.Equal(ButtonJoinRoom, row.Components[0].(discordgo.Button).CustomID)
		s.Equal(ButtonStartRound, row.Components[1].(discordgo.Button).CustomID)
	})

	s.Run("voting lists non-judge players", func() {
		s.room.Phase = models.PhaseVoting
		row := renderRoomComponents(s.room)[0].(discordgo.ActionsRow)
		menu := row.Components[0].(discordgo.SelectMenu)
		s.Equal(SelectVote, menu.CustomID)
		s.Require().Len(menu.Options, 2)
		s.Equal("p1", menu.Options[0].Value)
		s.Equal("p2", menu.Options[1].Value)
	})

	s.Run("results go back to lobby", func() {
		s.room.Phase = models.PhaseResults
		row := renderRoomComponents(s.room)[0].(discordgo.ActionsRow)
		s.Equal(ButtonAdvance, row.Components[0].(discordgo.Button).CustomID)
	})

	s.Run("entry has none", func() {
		s.room.Phase = models.PhaseEntry
		s.Nil(renderRoomComponents(s.room))
	})
}

func (s *RenderTestSuite) TestResultInput() {
	s.room.Phase = models.PhaseResults
	s.room.Winner = models.WinnerPlayers
	s.room.Players[0].HasVoted, s.room.Players[0].VoteID = true, "p2"
	s.room.Players[1].HasVoted, s.room.Players[1].VoteID = true, "p1"
	s.room.Players[1].IsImposter = true
	s.room.Players = append(s.room.Players, &models.Player{ID: "p4", Name: "Dan", HasVoted: true, VoteID: "p2"})

	input := resultInput(s.room)

	s.Equal(models.WinnerPlayers, input.Winner)
	s.Equal([]string{"Bob"}, input.VotedOutNames)
	s.Equal([]string{"Bob"}, input.ImposterNames)
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}
