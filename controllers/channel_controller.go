package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/services"
)

// ChannelController provisions chat channels for matches through the
// privileged server-side path; the client lacks the trust level to create
// channels with another member.
type ChannelController struct {
	Chat *services.ChatService
}

// NewChannelController creates a new ChannelController instance
func NewChannelController(chat *services.ChatService) *ChannelController {
	return &ChannelController{Chat: chat}
}

// HandleCreateMatchChannel creates the channel for a match
func (cc *ChannelController) HandleCreateMatchChannel(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID   string `json:"matchId"`
		UserID    string `json:"userId"`
		AgentID   string `json:"agentId"`
		AgentName string `json:"agentName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if request.MatchID == "" || request.UserID == "" || request.AgentID == "" || request.AgentName == "" {
		log.Println("Missing required fields in channel provisioning request")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "Missing required fields",
			"details": map[string]string{
				"matchId":   request.MatchID,
				"userId":    request.UserID,
				"agentId":   request.AgentID,
				"agentName": request.AgentName,
			},
		})
		return
	}

	err := cc.Chat.CreateMatchChannel(context.Background(), request.MatchID, request.UserID, request.AgentID, request.AgentName)
	if err != nil {
		log.Println("Error creating match channel:", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "Failed to create channel",
			"details": err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":      true,
		"channel": request.MatchID,
	})
}
