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

// UserProfileController handles HTTP requests for user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleGetProfile fetches a profile by user ID
func (pc *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := pc.UserProfileService.GetUserProfile(context.Background(), userID)
	if err != nil {
		log.Println("Error fetching profile:", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateProfile updates the nickname and preferences of a profile
func (pc *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var request struct {
		Username    string                 `json:"username"`
		Preferences models.UserPreferences `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := pc.UserProfileService.UpdateUserProfile(context.Background(), userID, request.Username, request.Preferences)
	if err != nil {
		log.Println("Error updating profile:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleCompleteOnboarding stores onboarding answers and marks the profile done
func (pc *UserProfileController) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var request struct {
		Username    string                 `json:"username"`
		Preferences models.UserPreferences `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if request.Username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}

	profile, err := pc.UserProfileService.CompleteOnboarding(context.Background(), userID, request.Username, request.Preferences)
	if err != nil {
		log.Println("Error completing onboarding:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
