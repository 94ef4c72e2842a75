package controllers

import (
	"encoding/json"
	"net/http"

	"companion_server/models"
	"companion_server/services"
)

// SessionController exposes the active-channel reference the chat screen
// reads on mount. A null channel means "no active channel, redirect away".
type SessionController struct {
	Session *services.SessionState
}

// NewSessionController creates a new SessionController instance
func NewSessionController(session *services.SessionState) *SessionController {
	return &SessionController{Session: session}
}

// HandleGetChannel returns the active channel, or null
func (sc *SessionController) HandleGetChannel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"channel": sc.Session.Channel()})
}

// HandleSetChannel binds the active channel, used by channel-list selection
func (sc *SessionController) HandleSetChannel(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Channel *models.Channel `json:"channel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Channel == nil || request.Channel.ID == "" {
		http.Error(w, "Channel with id is required", http.StatusBadRequest)
		return
	}

	sc.Session.SetChannel(request.Channel)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"channel": request.Channel})
}

// HandleClearChannel drops the active channel reference
func (sc *SessionController) HandleClearChannel(w http.ResponseWriter, r *http.Request) {
	sc.Session.Clear()
	w.WriteHeader(http.StatusNoContent)
}
