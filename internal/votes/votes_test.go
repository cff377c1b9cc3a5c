package votes

import (
	"testing"

	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/stretchr/testify/suite"
)

type VotesTestSuite struct {
	suite.Suite
}

func TestVotesTestSuite(t *testing.T) {
	suite.Run(t, new(VotesTestSuite))
}

func withVotes(imposters map[string]bool, votes [][2]string) []*models.Player {
	players := make([]*models.Player, 0, len(votes))
	for _, v := range votes {
		players = append(players, &models.Player{
			ID:         v[0],
			VoteID:     v[1],
			HasVoted:   v[1] != "",
			IsImposter: imposters[v[0]],
		})
	}
	return players
}

func (s *VotesTestSuite) TestPluralityCatchesSoleImposter() {
	players := withVotes(map[string]bool{"P2": true}, [][2]string{
		{"P1", "P2"}, {"P2", "P2"}, {"P3", "P2"}, {"P4", "P1"},
	})

	result := Resolve(players)

	s.Equal(3, result.MaxVotes)
	s.Equal([]string{"P2"}, result.VotedOutIDs)
	s.Equal([]string{"P2"}, result.CaughtImposterIDs)
	s.Equal(models.WinnerPlayers, result.Winner)
}

func (s *VotesTestSuite) TestPluralityMissesImposter() {
	players := withVotes(map[string]bool{"P3": true}, [][2]string{
		{"P1", "P2"}, {"P2", "P2"}, {"P3", "P2"}, {"P4", "P1"},
	})

	result := Resolve(players)

	s.Equal([]string{"P2"}, result.VotedOutIDs)
	s.Empty(result.CaughtImposterIDs)
	s.Equal(models.WinnerImposters, result.Winner)
}

func (s *VotesTestSuite) TestTieEliminatesEveryoneOnTop() {
	players := withVotes(nil, [][2]string{
		{"P1", "P2"}, {"P2", "P1"}, {"P3", ""}, {"P4", ""},
	})

	maxVotes, ids := VotedOut(Tally(players))

	s.Equal(1, maxVotes)
	s.Equal([]string{"P1", "P2"}, ids)
}

func (s *VotesTestSuite) TestTieCanCatchEveryImposter() {
	players := withVotes(map[string]bool{"P1": true, "P2": true}, [][2]string{
		{"P1", "P2"}, {"P2", "P1"}, {"P3", "P1"}, {"P4", "P2"},
	})

	result := Resolve(players)

	s.Equal([]string{"P1", "P2"}, result.VotedOutIDs)
	s.Equal(2, result.TotalImposters)
	s.Equal(models.WinnerPlayers, result.Winner)
}

func (s *VotesTestSuite) TestOneOfTwoImpostersCaughtIsALoss() {
	players := withVotes(map[string]bool{"P1": true, "P2": true}, [][2]string{
		{"P1", "P3"}, {"P2", "P1"}, {"P3", "P1"}, {"P4", "P1"},
	})

	result := Resolve(players)

	s.Equal([]string{"P1"}, result.CaughtImposterIDs)
	s.Equal(models.WinnerImposters, result.Winner)
}

func (s *VotesTestSuite) TestNoVotes() {
	result := Resolve(withVotes(map[string]bool{"P1": true}, [][2]string{{"P1", ""}, {"P2", ""}}))

	s.Equal(0, result.MaxVotes)
	s.Empty(result.VotedOutIDs)
	s.Equal(models.WinnerImposters, result.Winner)
}

func (s *VotesTestSuite) TestResolveIsOrderIndependent() {
	votes := [][2]string{
		{"P1", "P3"}, {"P2", "P3"}, {"P3", "P4"}, {"P4", "P3"}, {"P5", "P4"},
	}
	imposters := map[string]bool{"P3": true}
	expected := Resolve(withVotes(imposters, votes))

	reversed := make([][2]string, len(votes))
	for i, v := range votes {
		reversed[len(votes)-1-i] = v
	}
	rotated := append(append([][2]string{}, votes[2:]...), votes[:2]...)

	for _, order := range [][][2]string{reversed, rotated} {
		got := Resolve(withVotes(imposters, order))
		s.Equal(expected.VotedOutIDs, got.VotedOutIDs)
		s.Equal(expected.Winner, got.Winner)
		s.Equal(expected.Counts, got.Counts)
	}
}

func (s *VotesTestSuite) TestDecideWinner() {
	s.Equal(models.WinnerPlayers, DecideWinner([]string{"a"}, []string{"a", "b"}))
	s.Equal(models.WinnerImposters, DecideWinner([]string{"a", "c"}, []string{"a", "b"}))
	s.Equal(models.WinnerPlayers, DecideWinner(nil, []string{"b"}))
}

func (s *VotesTestSuite) TestApplyScoresPlayersWin() {
	players := []*models.Player{
		{ID: "c1", Score: 1},
		{ID: "c2"},
		{ID: "imp", IsImposter: true, Score: 4},
		{ID: "judge", IsJudge: true, Score: 3},
	}

	updated := ApplyScores(players, models.WinnerPlayers)

	s.Equal(3, updated[0].Score)
	s.Equal(2, updated[1].Score)
	s.Equal(4, updated[2].Score)
	s.Equal(3, updated[3].Score)
	s.Equal(1, players[0].Score, "input roster must not change")
}

func (s *VotesTestSuite) TestApplyScoresImpostersWin() {
	players := []*models.Player{
		{ID: "c1"},
		{ID: "imp", IsImposter: true},
		{ID: "judge", IsJudge: true},
	}

	updated := ApplyScores(players, models.WinnerImposters)

	s.Equal(1, updated[0].Score)
	s.Equal(2, updated[1].Score)
	s.Equal(0, updated[2].Score)
}
