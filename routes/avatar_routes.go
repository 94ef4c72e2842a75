package routes

import (
	"companion_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAvatarRoutes sets up avatar upload routes
func RegisterAvatarRoutes(r *mux.Router) {
	r.HandleFunc("/api/uploads/avatar", controllers.GenerateAvatarUploadURL).Methods("POST")
	r.HandleFunc("/api/uploads/avatar/read", controllers.GetAvatarReadURL).Methods("POST")
}
