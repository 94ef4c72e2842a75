package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/models"
	"companion_server/services"

	"github.com/gorilla/mux"
)

// AgentController serves the agent catalog and the chat-side agent sync.
type AgentController struct {
	Agents *services.AgentService
	Chat   *services.ChatService
}

// NewAgentController creates a new AgentController instance
func NewAgentController(agents *services.AgentService, chat *services.ChatService) *AgentController {
	return &AgentController{Agents: agents, Chat: chat}
}

// HandleGetAgents returns the agent catalog, optionally filtered by gender
func (ac *AgentController) HandleGetAgents(w http.ResponseWriter, r *http.Request) {
	gender := r.URL.Query().Get("gender")

	agents, err := ac.Agents.GetAgents(context.Background(), gender)
	if err != nil {
		log.Println("Error fetching agents:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agents)
}

// HandleGetAgent returns a single agent by ID
func (ac *AgentController) HandleGetAgent(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["agentId"]

	agent, err := ac.Agents.GetAgent(context.Background(), agentID)
	if err != nil {
		log.Println("Error fetching agent:", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(agent)
}

// HandleSyncAgent upserts an agent as a chat-SDK user
func (ac *AgentController) HandleSyncAgent(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Agent models.AIAgent `json:"agent"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if request.Agent.ID == "" {
		log.Println("Missing agent id in sync request")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Agent id is required",
		})
		return
	}

	syncedUser, err := ac.Chat.SyncAgent(context.Background(), request.Agent)
	if err != nil {
		log.Println("Error syncing agent:", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to sync agent",
			"details": err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":         true,
		"syncedUser": syncedUser,
	})
}
