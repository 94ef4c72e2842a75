package services

import (
	"sync"

	"companion_server/models"
)

// SessionState holds the single "currently active channel" shared across
// screens. The chat screen is reached by navigation, not by parameter
// passing, so it reads the channel from here. Writes come from the match
// flow and from channel-list selection; last writer wins.
type SessionState struct {
	mu      sync.Mutex
	channel *models.Channel
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

// SetChannel replaces the active channel.
func (ss *SessionState) SetChannel(channel *models.Channel) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.channel = channel
}

// Channel returns the active channel. Consumers must treat nil as "no active
// channel" and redirect away.
func (ss *SessionState) Channel() *models.Channel {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.channel
}

// Clear drops the active channel reference.
func (ss *SessionState) Clear() {
	ss.SetChannel(nil)
}
