package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"companion_server/services"
)

// ChatTokenController exchanges an auth-platform credential for a chat-SDK
// token scoped to the requesting user.
type ChatTokenController struct {
	Chat *services.ChatService
	Auth services.AuthVerifier
}

// NewChatTokenController creates a new ChatTokenController instance
func NewChatTokenController(chat *services.ChatService, auth services.AuthVerifier) *ChatTokenController {
	return &ChatTokenController{Chat: chat, Auth: auth}
}

// HandleCreateToken issues a chat token for the bearer of a valid platform
// credential.
func (tc *ChatTokenController) HandleCreateToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	credential := strings.TrimPrefix(authHeader, "Bearer ")

	userID, err := tc.Auth.VerifyToken(context.Background(), credential)
	if err != nil {
		log.Println("Rejected chat token request:", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	token, err := tc.Chat.CreateUserToken(userID)
	if err != nil {
		log.Println("Error signing chat token:", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}
