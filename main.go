package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"companion_server/config"
	"companion_server/routes"
	"companion_server/services"
	"companion_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize the chat-SDK client
	streamClient, err := services.NewStreamChatClient(cfg.StreamAPIKey, cfg.StreamAPISecret)
	if err != nil {
		log.Fatalf("Failed to initialize chat client: %v", err)
	}

	// Initialize the Socket.IO server for match notifications
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	agentService := &services.AgentService{Dynamo: dynamoService}
	matchService := &services.MatchService{Dynamo: dynamoService}
	chatService := &services.ChatService{
		Chat:            streamClient,
		APISecret:       cfg.StreamAPISecret,
		AvatarBucketURL: cfg.AvatarBucketURL,
	}
	agentRuntime := services.NewAgentRuntimeService(cfg.AIServerURL)
	sessionState := services.NewSessionState()
	swipeService := &services.SwipeService{
		Matches:      matchService,
		Chat:         chatService,
		AgentRuntime: agentRuntime,
		Session:      sessionState,
		Notifier:     &socket.Broadcaster{Server: socketServer},
	}
	authVerifier := services.NewPlatformAuthVerifier(cfg.AuthBaseURL)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Companion")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterAgentRoutes(r, agentService, chatService, matchService, agentRuntime)
	routes.RegisterChatRoutes(r, chatService, authVerifier)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterSwipeRoutes(r, agentService, swipeService, sessionState)
	routes.RegisterAvatarRoutes(r)
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
