package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"companion_server/models"
)

// AgentRuntimeService attaches and detaches the external AI process for a
// chat channel. Focus and unfocus of the chat screen can fire in rapid
// succession, so each channel carries a small state machine: a stop arriving
// while a start is still in flight is queued and executed once the start
// settles, instead of racing it.
type AgentRuntimeService struct {
	BaseURL    string
	HTTPClient *http.Client

	mu       sync.Mutex
	channels map[string]*channelAgent
}

type channelAgent struct {
	state      string
	stopQueued bool
}

// NewAgentRuntimeService creates a runtime controller for the given AI server.
func NewAgentRuntimeService(baseURL string) *AgentRuntimeService {
	return &AgentRuntimeService{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
		channels:   make(map[string]*channelAgent),
	}
}

// State reports the runtime state for a channel.
func (ars *AgentRuntimeService) State(channelID string) string {
	ars.mu.Lock()
	defer ars.mu.Unlock()
	if ca, ok := ars.channels[channelID]; ok {
		return ca.state
	}
	return models.AgentStopped
}

// Start attaches the AI agent to a channel. Starting an already starting or
// running channel is a no-op; server-side de-duplication covers the rest.
func (ars *AgentRuntimeService) Start(ctx context.Context, channelID string) error {
	ars.mu.Lock()
	ca, ok := ars.channels[channelID]
	if !ok {
		ca = &channelAgent{state: models.AgentStopped}
		ars.channels[channelID] = ca
	}
	switch ca.state {
	case models.AgentStarting, models.AgentRunning:
		ca.stopQueued = false
		ars.mu.Unlock()
		return nil
	case models.AgentStopping:
		ars.mu.Unlock()
		return fmt.Errorf("agent for channel %s is still stopping", channelID)
	}
	ca.state = models.AgentStarting
	ars.mu.Unlock()

	err := ars.post(ctx, "/start-ai-agent", channelID)

	ars.mu.Lock()
	if err != nil {
		ca.state = models.AgentStopped
		ca.stopQueued = false
		ars.mu.Unlock()
		return fmt.Errorf("failed to start AI agent for channel %s: %w", channelID, err)
	}
	ca.state = models.AgentRunning
	stopQueued := ca.stopQueued
	ca.stopQueued = false
	ars.mu.Unlock()

	if stopQueued {
		log.Printf("Running queued stop for channel %s", channelID)
		return ars.Stop(ctx, channelID)
	}
	return nil
}

// Stop detaches the AI agent from a channel. A stop during an in-flight
// start is queued; stopping an already stopped channel is a no-op.
func (ars *AgentRuntimeService) Stop(ctx context.Context, channelID string) error {
	ars.mu.Lock()
	ca, ok := ars.channels[channelID]
	if !ok || ca.state == models.AgentStopped || ca.state == models.AgentStopping {
		ars.mu.Unlock()
		return nil
	}
	if ca.state == models.AgentStarting {
		ca.stopQueued = true
		ars.mu.Unlock()
		return nil
	}
	ca.state = models.AgentStopping
	ars.mu.Unlock()

	err := ars.post(ctx, "/stop-ai-agent", channelID)

	ars.mu.Lock()
	if err != nil {
		// The remote agent may still be attached; keep the channel running
		// so a later stop can retry.
		ca.state = models.AgentRunning
		ars.mu.Unlock()
		return fmt.Errorf("failed to stop AI agent for channel %s: %w", channelID, err)
	}
	ca.state = models.AgentStopped
	ars.mu.Unlock()
	return nil
}

// NotifyNewMessage nudges the AI server to produce a fresh message in a
// channel, used to re-engage recent matches.
func (ars *AgentRuntimeService) NotifyNewMessage(ctx context.Context, channelID string) error {
	if err := ars.post(ctx, "/new-ai-message", channelID); err != nil {
		return fmt.Errorf("failed to request AI message for channel %s: %w", channelID, err)
	}
	return nil
}

func (ars *AgentRuntimeService) post(ctx context.Context, path, channelID string) error {
	body, err := json.Marshal(map[string]string{"channel_id": channelID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ars.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ars.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP Error: %d - %s", resp.StatusCode, string(text))
	}
	return nil
}
