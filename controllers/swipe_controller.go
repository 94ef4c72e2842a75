package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/models"
	"companion_server/services"
)

// SwipeController resolves completed card gestures into match decisions.
type SwipeController struct {
	Agents *services.AgentService
	Swipes *services.SwipeService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(agents *services.AgentService, swipes *services.SwipeService) *SwipeController {
	return &SwipeController{Agents: agents, Swipes: swipes}
}

// HandleSwipe classifies a gesture release and, on an accepted swipe, drives
// the match provisioning flow.
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID    string  `json:"userId"`
		AgentID   string  `json:"agentId"`
		VelocityX float64 `json:"velocityX"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.UserID == "" || request.AgentID == "" {
		log.Println("Missing required fields in swipe request")
		http.Error(w, "UserId and AgentId are required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	decision := services.ClassifyRelease(request.VelocityX)
	if decision == models.DecisionNone {
		json.NewEncoder(w).Encode(services.SwipeResult{Decision: models.DecisionNone})
		return
	}

	agent, err := sc.Agents.GetAgent(context.Background(), request.AgentID)
	if err != nil {
		log.Println("Error fetching agent for swipe:", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	result, err := sc.Swipes.ResolveSwipe(context.Background(), decision == models.DecisionAccept, *agent, request.UserID)
	if err != nil {
		log.Println("Error resolving swipe:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}
