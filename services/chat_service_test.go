package services

import (
	"context"
	"testing"
	"time"

	"companion_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture() (*ChatService, *fakeChatClient) {
	chat := newFakeChatClient()
	service := &ChatService{
		Chat:            chat,
		APISecret:       "test-secret",
		AvatarBucketURL: "https://cdn.example.com/avatars/",
	}
	return service, chat
}

func TestSyncAgentUpsertsChatUser(t *testing.T) {
	service, chat := newChatFixture()

	agent := models.AIAgent{ID: "agent-9", Name: "Ava", Avatar: "ava.jpg"}
	synced, err := service.SyncAgent(context.Background(), agent)
	require.NoError(t, err)

	assert.Equal(t, "agent-9", synced.ID)
	assert.Equal(t, "Ava", synced.Name)
	assert.Equal(t, "https://cdn.example.com/avatars/ava.jpg", synced.Image)
	assert.Equal(t, "admin", synced.Role)
	assert.True(t, synced.Online)

	require.Len(t, chat.upserts, 1)
	assert.Equal(t, "agent-9", chat.upserts[0].ID)
}

func TestSyncAgentIsIdempotent(t *testing.T) {
	service, chat := newChatFixture()
	agent := models.AIAgent{ID: "agent-9", Name: "Ava"}

	first, err := service.SyncAgent(context.Background(), agent)
	require.NoError(t, err)
	second, err := service.SyncAgent(context.Background(), agent)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "re-syncing must resolve to the same chat user")
	assert.Len(t, chat.upserts, 2, "both calls go through as upserts, not inserts")
}

func TestSyncAgentRequiresID(t *testing.T) {
	service, chat := newChatFixture()

	_, err := service.SyncAgent(context.Background(), models.AIAgent{Name: "Ava"})
	require.Error(t, err)
	assert.Empty(t, chat.upserts)
}

func TestSyncAgentWithoutAvatarLeavesImageEmpty(t *testing.T) {
	service, _ := newChatFixture()

	synced, err := service.SyncAgent(context.Background(), models.AIAgent{ID: "agent-9", Name: "Ava"})
	require.NoError(t, err)
	assert.Empty(t, synced.Image)
}

func TestCreateMatchChannelValidatesFields(t *testing.T) {
	service, chat := newChatFixture()

	tests := []struct {
		name                                string
		matchID, userID, agentID, agentName string
	}{
		{"missing matchId", "", "user-1", "agent-9", "Ava"},
		{"missing userId", "match-42", "", "agent-9", "Ava"},
		{"missing agentId", "match-42", "user-1", "", "Ava"},
		{"missing agentName", "match-42", "user-1", "agent-9", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateMatchChannel(context.Background(), tt.matchID, tt.userID, tt.agentID, tt.agentName)
			require.Error(t, err)
			assert.Empty(t, chat.channels, "no channel may be created on validation failure")
		})
	}
}

func TestCreateMatchChannelNamesAndMembers(t *testing.T) {
	service, chat := newChatFixture()

	err := service.CreateMatchChannel(context.Background(), "match-42", "user-1", "agent-9", "Ava")
	require.NoError(t, err)

	channel, ok := chat.channels["match-42"]
	require.True(t, ok)
	assert.Equal(t, "user-1", channel.createdBy)
	assert.Equal(t, []string{"user-1", "agent-9"}, channel.members)
	assert.Equal(t, "Chat with Ava", channel.name)
}

func TestCreateUserTokenClaims(t *testing.T) {
	service, _ := newChatFixture()

	signed, err := service.CreateUserToken("user-1")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "messaging", claims["type"])
	assert.Equal(t, "admin", claims["role"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, exp.Sub(iat.Time))
}

func TestCreateUserTokenRequiresUser(t *testing.T) {
	service, _ := newChatFixture()

	_, err := service.CreateUserToken("")
	require.Error(t, err)
}
