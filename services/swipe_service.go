package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"companion_server/models"
)

// SwipeVelocityThreshold is the release velocity above which a card gesture
// counts as a decision. Below it the card snaps back.
const SwipeVelocityThreshold = 400.0

// ClassifyRelease maps a gesture release velocity to a swipe decision:
// rightward past the threshold accepts, leftward past it rejects.
func ClassifyRelease(velocityX float64) string {
	if math.Abs(velocityX) <= SwipeVelocityThreshold {
		return models.DecisionNone
	}
	if velocityX > 0 {
		return models.DecisionAccept
	}
	return models.DecisionReject
}

// MatchNotifier receives the matched event once provisioning succeeds.
type MatchNotifier interface {
	NotifyMatched(userID string, match models.Match, agent models.AIAgent)
}

// SwipeService turns one accepted swipe into a working chat channel with an
// active AI participant, or fails cleanly leaving no partial state behind.
type SwipeService struct {
	Matches      *MatchService
	Chat         *ChatService
	AgentRuntime *AgentRuntimeService
	Session      *SessionState
	Notifier     MatchNotifier
}

// SwipeResult reports the outcome of a resolved swipe.
type SwipeResult struct {
	Decision   string          `json:"decision"`
	Match      *models.Match   `json:"match,omitempty"`
	Channel    *models.Channel `json:"channel,omitempty"`
	NavigateTo string          `json:"navigateTo,omitempty"`
}

// ResolveSwipe drives the provisioning sequence for a swipe decision. A
// reject returns immediately with no backend effect. An accept runs, in
// strict order: agent sync, match persistence, channel provisioning, session
// binding, best-effort agent start, matched signal. Each completed remote
// step registers a compensation; when a later step fails, compensations run
// in reverse order before the error is surfaced, so a match never outlives a
// failed channel.
func (ss *SwipeService) ResolveSwipe(ctx context.Context, accepted bool, agent models.AIAgent, userID string) (*SwipeResult, error) {
	if !accepted {
		return &SwipeResult{Decision: models.DecisionReject}, nil
	}

	if agent.ID == "" || agent.Name == "" {
		return nil, errors.New("agent id and name are required")
	}
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	var compensations []func()
	unwind := func() {
		for i := len(compensations) - 1; i >= 0; i-- {
			compensations[i]()
		}
	}

	// Sync the agent to the chat SDK before anything is persisted, so a
	// match can never reference an unregistered chat participant.
	if _, err := ss.Chat.SyncAgent(ctx, agent); err != nil {
		return nil, fmt.Errorf("sync agent: %w", err)
	}

	match, err := ss.Matches.CreateMatch(ctx, userID, agent.ID)
	if err != nil {
		return nil, fmt.Errorf("persist match: %w", err)
	}
	compensations = append(compensations, func() {
		if err := ss.Matches.DeleteMatch(ctx, match.MatchID); err != nil {
			log.Printf("Failed to unwind match %s: %v", match.MatchID, err)
		}
	})

	if err := ss.Chat.CreateMatchChannel(ctx, match.MatchID, userID, agent.ID, agent.Name); err != nil {
		unwind()
		return nil, fmt.Errorf("provision channel: %w", err)
	}

	channel := &models.Channel{
		ID:      match.MatchID,
		Name:    fmt.Sprintf("Chat with %s", agent.Name),
		Members: []string{userID, agent.ID},
	}
	ss.Session.SetChannel(channel)

	// Best effort: the match and channel already exist, so a failed start
	// only means no AI replies until the chat screen retries it.
	if err := ss.AgentRuntime.Start(ctx, match.MatchID); err != nil {
		log.Printf("Failed to start AI agent for match %s: %v", match.MatchID, err)
	}

	if ss.Notifier != nil {
		ss.Notifier.NotifyMatched(userID, *match, agent)
	}

	return &SwipeResult{
		Decision:   models.DecisionAccept,
		Match:      match,
		Channel:    channel,
		NavigateTo: "/matched/" + agent.ID,
	}, nil
}
