package discord

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SessionsTestSuite struct {
	suite.Suite
	sessions *sessions
}

func (s *SessionsTestSuite) SetupTest() {
	s.sessions = newSessions()
}

func (s *SessionsTestSuite) TestChannelBinding() {
	s.sessions.bindChannel("chan-1", "4821")

	code, ok := s.sessions.roomFor("chan-1")
	s.Require().True(ok)
	s.Equal("4821", code)

	channelID, ok := s.sessions.channelFor("4821")
	s.Require().True(ok)
	s.Equal("chan-1", channelID)

	_, ok = s.sessions.roomFor("chan-2")
	s.False(ok)
}

func (s *SessionsTestSuite) TestRebindChannelDropsOldRoom() {
	s.sessions.bindChannel("chan-1", "4821")
	s.sessions.setMessage("4821", "msg-1")
	s.sessions.bindChannel("chan-1", "1234")

	code, ok := s.sessions.roomFor("chan-1")
	s.Require().True(ok)
	s.Equal("1234", code)

	_, ok = s.sessions.channelFor("4821")
	s.False(ok)
	_, ok = s.sessions.messageFor("4821")
	s.False(ok)
}

func (s *SessionsTestSuite) TestPlayersAreScopedToRooms() {
	s.sessions.bindPlayer("4821", "user-1", "p1")
	s.sessions.bindPlayer("1234", "user-1", "p9")

	id, ok := s.sessions.playerFor("4821", "user-1")
	s.Require().True(ok)
	s.Equal("p1", id)

	id, ok = s.sessions.playerFor("1234", "user-1")
	s.Require().True(ok)
	s.Equal("p9", id)

	_, ok = s.sessions.playerFor("4821", "user-2")
	s.False(ok)
}

func (s *SessionsTestSuite) TestForget() {
	s.sessions.bindChannel("chan-1", "4821")
	s.sessions.setMessage("4821", "msg-1")
	s.sessions.bindPlayer("4821", "user-1", "p1")
	s.sessions.bindPlayer("48210", "user-1", "p7")

	s.sessions.forget("4821")

	_, ok := s.sessions.roomFor("chan-1")
	s.False(ok)
	_, ok = s.sessions.messageFor("4821")
	s.False(ok)
	_, ok = s.sessions.playerFor("4821", "user-1")
	s.False(ok)

	id, ok := s.sessions.playerFor("48210", "user-1")
	s.Require().True(ok)
	s.Equal("p7", id)
}

func TestSessionsSuite(t *testing.T) {
	suite.Run(t, new(SessionsTestSuite))
}
