package services

import (
	"testing"

	"companion_server/models"

	"github.com/stretchr/testify/assert"
)

func TestSessionStateStartsEmpty(t *testing.T) {
	ss := NewSessionState()
	assert.Nil(t, ss.Channel())
}

func TestSessionStateLastWriterWins(t *testing.T) {
	ss := NewSessionState()

	ss.SetChannel(&models.Channel{ID: "match-1"})
	ss.SetChannel(&models.Channel{ID: "match-2"})

	channel := ss.Channel()
	assert.NotNil(t, channel)
	assert.Equal(t, "match-2", channel.ID)
}

func TestSessionStateClear(t *testing.T) {
	ss := NewSessionState()
	ss.SetChannel(&models.Channel{ID: "match-1"})

	ss.Clear()
	assert.Nil(t, ss.Channel())
}
