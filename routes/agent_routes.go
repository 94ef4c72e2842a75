package routes

import (
	"companion_server/controllers"
	"companion_server/services"

	"github.com/gorilla/mux"
)

// RegisterAgentRoutes sets up routes for catalog and sync operations under /api/agents
func RegisterAgentRoutes(r *mux.Router, agentService *services.AgentService, chatService *services.ChatService, matchService *services.MatchService, agentRuntime *services.AgentRuntimeService) {
	agentController := controllers.NewAgentController(agentService, chatService)
	runtimeController := controllers.NewRuntimeController(agentRuntime)
	engagementController := controllers.NewEngagementController(matchService, agentRuntime)

	agentRouter := r.PathPrefix("/api/agents").Subrouter()

	agentRouter.HandleFunc("", agentController.HandleGetAgents).Methods("GET")
	agentRouter.HandleFunc("/sync", agentController.HandleSyncAgent).Methods("POST")
	agentRouter.HandleFunc("/nudge-recent", engagementController.HandleNudgeRecent).Methods("POST")
	agentRouter.HandleFunc("/runtime/start", runtimeController.HandleStart).Methods("POST")
	agentRouter.HandleFunc("/runtime/stop", runtimeController.HandleStop).Methods("POST")
	agentRouter.HandleFunc("/{agentId}", agentController.HandleGetAgent).Methods("GET")
}
