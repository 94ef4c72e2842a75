package models

// Channel is a transient reference to a chat-SDK conversation. The channel
// itself is owned by the chat SDK; only its identity and members are kept
// here. ID always equals the match ID it was provisioned for.
type Channel struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}
