package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"companion_server/services"

	"github.com/gorilla/mux"
)

// MatchController serves match records
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// HandleGetMatch fetches a single match by ID
func (mc *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	match, err := mc.Matches.GetMatch(context.Background(), matchID)
	if err != nil {
		log.Println("Error fetching match:", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(match)
}

// HandleGetMatchesForUser fetches all matches for a user, newest first
func (mc *MatchController) HandleGetMatchesForUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	matches, err := mc.Matches.GetMatchesForUser(context.Background(), userID)
	if err != nil {
		log.Println("Error fetching matches:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
