package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoomTestSuite struct {
	suite.Suite
	room *Room
}

func (s *RoomTestSuite) SetupTest() {
	created := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.room = &Room{
		Code:           "4821",
		Categories:     []string{DefaultCategoryID},
		ImpostersCount: DefaultImpostersCount,
		RoundDuration:  DefaultRoundDuration,
		WordSource:     WordSourceSystem,
		TimeMode:       TimeModeOpen,
		Phase:          PhaseLobby,
		Players: []*Player{
			{ID: "p1", Name: "Alice", IsHost: true},
			{ID: "p2", Name: "Bob", Word: StringPtr("Egypt")},
		},
		LastActivity: created,
		CreatedAt:    created,
	}
}

func (s *RoomTestSuite) TestValidateAcceptsLobby() {
	s.NoError(s.room.Validate())
}

func (s *RoomTestSuite) TestValidateRejects() {
	testCases := []struct {
		name   string
		mutate func(r *Room)
	}{
		{name: "empty code", mutate: func(r *Room) { r.Code = "" }},
		{name: "entry phase", mutate: func(r *Room) { r.Phase = PhaseEntry }},
		{name: "unknown phase", mutate: func(r *Room) { r.Phase = "PAUSED" }},
		{name: "unknown word source", mutate: func(r *Room) { r.WordSource = "AI" }},
		{name: "unknown time mode", mutate: func(r *Room) { r.TimeMode = "FAST" }},
		{name: "no categories", mutate: func(r *Room) { r.Categories = nil }},
		{name: "zero impostors", mutate: func(r *Room) { r.ImpostersCount = 0 }},
		{name: "zero duration", mutate: func(r *Room) { r.RoundDuration = 0 }},
		{name: "no host", mutate: func(r *Room) { r.Players[0].IsHost = false }},
		{name: "two hosts", mutate: func(r *Room) { r.Players[1].IsHost = true }},
		{name: "two judges", mutate: func(r *Room) {
			r.Players[0].IsJudge = true
			r.Players[1].IsJudge = true
		}},
		{name: "judge flagged imposter", mutate: func(r *Room) {
			r.Players[1].IsJudge = true
			r.Players[1].IsImposter = true
		}},
		{name: "duplicate player", mutate: func(r *Room) { r.Players[1].ID = "p1" }},
		{name: "empty player ID", mutate: func(r *Room) { r.Players[1].ID = "" }},
		{name: "negative score", mutate: func(r *Room) { r.Players[1].Score = -1 }},
		{name: "results without winner", mutate: func(r *Room) { r.Phase = PhaseResults }},
		{name: "winner outside results", mutate: func(r *Room) { r.Winner = WinnerPlayers }},
		{name: "timer outside discussion", mutate: func(r *Room) {
			t := r.CreatedAt.Add(time.Minute)
			r.TimerEndsAt = &t
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			r := s.room.Clone()
			tc.mutate(r)
			s.Error(r.Validate())
		})
	}
}

func (s *RoomTestSuite) TestCloneIsDeep() {
	ends := s.room.CreatedAt.Add(time.Minute)
	s.room.TimerEndsAt = &ends

	c := s.room.Clone()
	s.Require().Equal(s.room, c)

	c.Categories[0] = "food"
	c.Players[0].Name = "Changed"
	*c.Players[1].Word = "Morocco"
	*c.TimerEndsAt = ends.Add(time.Hour)

	s.Equal(DefaultCategoryID, s.room.Categories[0])
	s.Equal("Alice", s.room.Players[0].Name)
	s.Equal("Egypt", *s.room.Players[1].Word)
	s.Equal(ends, *s.room.TimerEndsAt)
}

func (s *RoomTestSuite) TestJSONRoundTrip() {
	data, err := json.Marshal(s.room)
	s.Require().NoError(err)

	var decoded Room
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(s.room, &decoded)
}

func (s *RoomTestSuite) TestLookups() {
	s.room.Players = append(s.room.Players, &Player{ID: "p3", Name: "Carol", IsJudge: true})

	s.Equal("p1", s.room.Host().ID)
	s.Equal("p3", s.room.Judge().ID)
	s.Equal("p2", s.room.FindPlayerByName("Bob").ID)
	s.Nil(s.room.FindPlayer("missing"))
	s.Len(s.room.NonJudgePlayers(), 2)
	s.True(s.room.HasCategory(DefaultCategoryID))
	s.False(s.room.HasCategory("food"))
}

func (s *RoomTestSuite) TestAllVotedCountsJudgeAsVoted() {
	s.room.Players = append(s.room.Players, &Player{ID: "p3", Name: "Carol", IsJudge: true, HasVoted: true})
	s.False(s.room.AllVoted())

	s.room.Players[0].HasVoted = true
	s.room.Players[1].HasVoted = true
	s.True(s.room.AllVoted())
}

func (s *RoomTestSuite) TestWaitingForJudge() {
	s.room.WordSource = WordSourceJudge
	s.True(s.room.WaitingForJudge())

	s.room.SecretWord = "Camel"
	s.False(s.room.WaitingForJudge())
}

func TestRoomSuite(t *testing.T) {
	suite.Run(t, new(RoomTestSuite))
}

func TestPhaseTransitions(t *testing.T) {
	cycle := []Phase{PhaseLobby, PhaseRoleReveal, PhaseDiscussion, PhaseVoting, PhaseResults, PhaseLobby}
	for i := 0; i < len(cycle)-1; i++ {
		assert.True(t, cycle[i].CanTransitionTo(cycle[i+1]), "%s -> %s", cycle[i], cycle[i+1])
	}

	assert.True(t, PhaseEntry.CanTransitionTo(PhaseLobby))
	assert.False(t, PhaseLobby.CanTransitionTo(PhaseVoting))
	assert.False(t, PhaseDiscussion.CanTransitionTo(PhaseLobby))
	assert.False(t, PhaseResults.CanTransitionTo(PhaseRoleReveal))
	assert.False(t, Phase("PAUSED").CanTransitionTo(PhaseLobby))
}

func TestPlayerCloneCopiesWord(t *testing.T) {
	p := &Player{ID: "p1", Word: StringPtr("Egypt")}
	c := p.Clone()
	require.NotNil(t, c.Word)

	*c.Word = "Morocco"
	assert.Equal(t, "Egypt", p.WordValue())
	assert.Nil(t, (*Player)(nil).Clone())
	assert.Equal(t, "", (&Player{}).WordValue())
}

func TestCategoryLabel(t *testing.T) {
	c := &Category{ID: "food", AR: "أكل", EN: "Food"}

	assert.Equal(t, "Food", c.Label(LanguageEnglish))
	assert.Equal(t, "أكل", c.Label(LanguageArabic))
	assert.Equal(t, "General", GeneralLabel(LanguageEnglish))
}
