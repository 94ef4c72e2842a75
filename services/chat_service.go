package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"companion_server/models"

	stream "github.com/GetStream/stream-chat-go/v5"
	"github.com/golang-jwt/jwt/v5"
)

// ChatUser is the chat-SDK user record written by agent sync.
type ChatUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	CreatedAt  string `json:"created_at"`
	LastActive string `json:"last_active"`
	Online     bool   `json:"online"`
	Role       string `json:"role"`
}

// ChatClient is the slice of the chat SDK this service uses. StreamChatClient
// is the production implementation.
type ChatClient interface {
	UpsertUser(ctx context.Context, user ChatUser) (string, error)
	CreateChannel(ctx context.Context, channelID, createdByID string, members []string, name string) error
	DeleteChannel(ctx context.Context, channelID string) error
}

// StreamChatClient delegates to the Stream server-side client.
type StreamChatClient struct {
	Client *stream.Client
}

// NewStreamChatClient builds the server-side chat client from API credentials.
func NewStreamChatClient(apiKey, apiSecret string) (*StreamChatClient, error) {
	client, err := stream.NewClient(apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}
	return &StreamChatClient{Client: client}, nil
}

func (sc *StreamChatClient) UpsertUser(ctx context.Context, user ChatUser) (string, error) {
	resp, err := sc.Client.UpsertUser(ctx, &stream.User{
		ID:    user.ID,
		Name:  user.Name,
		Image: user.Image,
		Role:  user.Role,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert chat user '%s': %w", user.ID, err)
	}
	return resp.User.ID, nil
}

func (sc *StreamChatClient) CreateChannel(ctx context.Context, channelID, createdByID string, members []string, name string) error {
	_, err := sc.Client.CreateChannel(ctx, "messaging", channelID, createdByID, &stream.ChannelRequest{
		Members:   members,
		ExtraData: map[string]interface{}{"name": name},
	})
	if err != nil {
		return fmt.Errorf("failed to create channel '%s': %w", channelID, err)
	}
	return nil
}

func (sc *StreamChatClient) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := sc.Client.DeleteChannels(ctx, []string{"messaging:" + channelID}, true)
	if err != nil {
		return fmt.Errorf("failed to delete channel '%s': %w", channelID, err)
	}
	return nil
}

// ChatService is the choke point for every chat-SDK operation: agent sync,
// channel provisioning and token issuance. The client itself never talks to
// the SDK with server credentials; it goes through these paths.
type ChatService struct {
	Chat            ChatClient
	APISecret       string
	AvatarBucketURL string
}

// SyncAgent registers or refreshes an agent as a chat-SDK user. The upsert is
// keyed by agent ID, so repeating it for the same agent is a no-op refresh.
func (cs *ChatService) SyncAgent(ctx context.Context, agent models.AIAgent) (*ChatUser, error) {
	if agent.ID == "" {
		return nil, errors.New("agent id is required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user := ChatUser{
		ID:         agent.ID,
		Name:       agent.Name,
		CreatedAt:  now,
		LastActive: now,
		Online:     true,
		Role:       "admin",
	}
	if agent.Avatar != "" {
		user.Image = cs.AvatarBucketURL + agent.Avatar
	}

	log.Printf("Syncing agent %s (%s) to chat", agent.ID, agent.Name)
	syncedID, err := cs.Chat.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to sync agent: %w", err)
	}
	user.ID = syncedID

	return &user, nil
}

// CreateMatchChannel provisions the conversation for a match. The channel ID
// is the match ID; members are the user and the agent; the user is recorded
// as creator.
func (cs *ChatService) CreateMatchChannel(ctx context.Context, matchID, userID, agentID, agentName string) error {
	if matchID == "" || userID == "" || agentID == "" || agentName == "" {
		return errors.New("matchId, userId, agentId and agentName are required")
	}

	name := fmt.Sprintf("Chat with %s", agentName)
	log.Printf("Creating channel %s for user %s and agent %s", matchID, userID, agentID)
	return cs.Chat.CreateChannel(ctx, matchID, userID, []string{userID, agentID}, name)
}

// DeleteMatchChannel removes a provisioned channel. Used when a later
// provisioning step fails and the channel must not outlive its match.
func (cs *ChatService) DeleteMatchChannel(ctx context.Context, matchID string) error {
	if matchID == "" {
		return errors.New("matchId is required")
	}
	return cs.Chat.DeleteChannel(ctx, matchID)
}

// CreateUserToken signs a chat-SDK credential for the given user, valid for
// one hour, carrying full grants for the messaging scope.
func (cs *ChatService) CreateUserToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":    userID,
		"exp":        now.Add(time.Hour).Unix(),
		"iat":        now.Unix(),
		"role":       "admin",
		"type":       "messaging",
		"permission": "read, write, create, delete, update",
		"access":     "channel",
		"grants": map[string]interface{}{
			"messaging": []string{"read", "write", "create", "delete", "update"},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cs.APISecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign chat token: %w", err)
	}
	return signed, nil
}
