package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/services"
)

// RuntimeController binds the chat screen lifecycle to the AI agent: focus
// starts the agent for the active channel, unfocus stops it.
type RuntimeController struct {
	AgentRuntime *services.AgentRuntimeService
}

// NewRuntimeController creates a new RuntimeController instance
func NewRuntimeController(agentRuntime *services.AgentRuntimeService) *RuntimeController {
	return &RuntimeController{AgentRuntime: agentRuntime}
}

func decodeChannelID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var request struct {
		ChannelID string `json:"channel_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return "", false
	}
	if request.ChannelID == "" {
		http.Error(w, "channel_id is required", http.StatusBadRequest)
		return "", false
	}
	return request.ChannelID, true
}

// HandleStart attaches the AI agent to a channel
func (rc *RuntimeController) HandleStart(w http.ResponseWriter, r *http.Request) {
	channelID, ok := decodeChannelID(w, r)
	if !ok {
		return
	}

	if err := rc.AgentRuntime.Start(context.Background(), channelID); err != nil {
		log.Println("Error starting AI agent:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"state": rc.AgentRuntime.State(channelID)})
}

// HandleStop detaches the AI agent from a channel
func (rc *RuntimeController) HandleStop(w http.ResponseWriter, r *http.Request) {
	channelID, ok := decodeChannelID(w, r)
	if !ok {
		return
	}

	if err := rc.AgentRuntime.Stop(context.Background(), channelID); err != nil {
		log.Println("Error stopping AI agent:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"state": rc.AgentRuntime.State(channelID)})
}
