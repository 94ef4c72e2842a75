package routes

import (
	"companion_server/controllers"
	"companion_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the privileged chat-SDK routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, authVerifier services.AuthVerifier) {
	tokenController := controllers.NewChatTokenController(chatService, authVerifier)
	channelController := controllers.NewChannelController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/token", tokenController.HandleCreateToken).Methods("POST")
	chatRouter.HandleFunc("/channel", channelController.HandleCreateMatchChannel).Methods("POST")
}
