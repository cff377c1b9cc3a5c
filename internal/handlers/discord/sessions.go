package discord

import (
	"strings"
	"sync"
)

// sessions binds Discord channels and users to rooms and player IDs.
// It lives in memory only; after a restart players recover their ID by
// joining again with the same display name.
type sessions struct {
	mu sync.RWMutex

	// channel ID -> room code
	channels map[string]string

	// room code -> channel ID
	rooms map[string]string

	// room code -> status message ID
	messages map[string]string

	// room code + Discord user ID -> player ID
	players map[string]string
}

func newSessions() *sessions {
	return &sessions{
		channels: make(map[string]string),
		rooms:    make(map[string]string),
		messages: make(map[string]string),
		players:  make(map[string]string),
	}
}

func playerKey(code, userID string) string {
	return code + "/" + userID
}

// bindChannel points a channel at a room, replacing any earlier room
func (s *sessions) bindChannel(channelID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.channels[channelID]; ok && old != code {
		delete(s.rooms, old)
		delete(s.messages, old)
	}
	s.channels[channelID] = code
	s.rooms[code] = channelID
}

func (s *sessions) roomFor(channelID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	code, ok := s.channels[channelID]
	return code, ok
}

func (s *sessions) channelFor(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channelID, ok := s.rooms[code]
	return channelID, ok
}

func (s *sessions) setMessage(code, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[code] = messageID
}

func (s *sessions) messageFor(code string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.messages[code]
	return id, ok
}

func (s *sessions) bindPlayer(code, userID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[playerKey(code, userID)] = playerID
}

func (s *sessions) playerFor(code, userID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.players[playerKey(code, userID)]
	return id, ok
}

// forget drops everything known about a room
func (s *sessions) forget(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if channelID, ok := s.rooms[code]; ok && s.channels[channelID] == code {
		delete(s.channels, channelID)
	}
	delete(s.rooms, code)
	delete(s.messages, code)

	prefix := code + "/"
	for key := range s.players {
		if strings.HasPrefix(key, prefix) {
			delete(s.players, key)
		}
	}
}
