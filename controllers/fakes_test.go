package controllers

import (
	"context"
	"errors"
	"sync"

	"companion_server/services"
)

// stubChatClient records chat-SDK calls for handler tests.
type stubChannel struct {
	createdBy string
	members   []string
	name      string
}

type stubChatClient struct {
	mu        sync.Mutex
	upserts   []services.ChatUser
	channels  map[string]stubChannel
	upsertErr error
	createErr error
}

func newStubChatClient() *stubChatClient {
	return &stubChatClient{channels: make(map[string]stubChannel)}
}

func (s *stubChatClient) UpsertUser(ctx context.Context, user services.ChatUser) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.upsertErr != nil {
		return "", s.upsertErr
	}
	s.upserts = append(s.upserts, user)
	return user.ID, nil
}

func (s *stubChatClient) CreateChannel(ctx context.Context, channelID, createdByID string, members []string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.channels[channelID] = stubChannel{createdBy: createdByID, members: members, name: name}
	return nil
}

func (s *stubChatClient) DeleteChannel(ctx context.Context, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.channels, channelID)
	return nil
}

// stubAuthVerifier resolves every configured credential to a fixed user.
type stubAuthVerifier struct {
	userID string
}

func (s *stubAuthVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "valid-credential" {
		return s.userID, nil
	}
	return "", errors.New("credential rejected")
}

func newChatService(chat services.ChatClient) *services.ChatService {
	return &services.ChatService{
		Chat:            chat,
		APISecret:       "test-secret",
		AvatarBucketURL: "https://cdn.example.com/avatars/",
	}
}
