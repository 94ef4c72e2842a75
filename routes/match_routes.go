package routes

import (
	"companion_server/controllers"
	"companion_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match reads under /api/matches
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("/user/{userId}", controller.HandleGetMatchesForUser).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleGetMatch).Methods("GET")
}
