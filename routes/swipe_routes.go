package routes

import (
	"companion_server/controllers"
	"companion_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up the swipe resolution and session routes
func RegisterSwipeRoutes(r *mux.Router, agentService *services.AgentService, swipeService *services.SwipeService, session *services.SessionState) {
	swipeController := controllers.NewSwipeController(agentService, swipeService)
	sessionController := controllers.NewSessionController(session)

	r.HandleFunc("/api/swipe", swipeController.HandleSwipe).Methods("POST")

	sessionRouter := r.PathPrefix("/api/session").Subrouter()
	sessionRouter.HandleFunc("/channel", sessionController.HandleGetChannel).Methods("GET")
	sessionRouter.HandleFunc("/channel", sessionController.HandleSetChannel).Methods("POST")
	sessionRouter.HandleFunc("/channel", sessionController.HandleClearChannel).Methods("DELETE")
}
