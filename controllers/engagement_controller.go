package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/services"
)

// EngagementController re-engages quiet conversations by asking the AI
// server for a fresh message in the most recent matches. Driven by an
// external scheduler.
type EngagementController struct {
	Matches      *services.MatchService
	AgentRuntime *services.AgentRuntimeService
}

// NewEngagementController creates a new EngagementController instance
func NewEngagementController(matches *services.MatchService, agentRuntime *services.AgentRuntimeService) *EngagementController {
	return &EngagementController{Matches: matches, AgentRuntime: agentRuntime}
}

const recentMatchLimit = 3

// HandleNudgeRecent notifies the newest matches
func (ec *EngagementController) HandleNudgeRecent(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	matches, err := ec.Matches.GetRecentMatches(ctx, recentMatchLimit)
	if err != nil {
		log.Println("Error fetching recent matches:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	notified := 0
	for _, match := range matches {
		if err := ec.AgentRuntime.NotifyNewMessage(ctx, match.MatchID); err != nil {
			log.Printf("Failed to nudge match %s: %v", match.MatchID, err)
			continue
		}
		notified++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"message":  "Matches notified",
		"notified": notified,
	})
}
