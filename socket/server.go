package socket

import (
	"log"

	"companion_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes and returns a new Socket.IO server. Clients
// join a per-user room and receive "matched" events when a swipe of theirs
// completes provisioning.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		log.Printf("Socket %s joined room for user %s\n", c.ID(), userID)
		c.Join(userRoom(userID))
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}

// Broadcaster pushes match events to the matched user's room.
type Broadcaster struct {
	Server *socketio.Server
}

// NotifyMatched emits the matched event for a freshly provisioned match.
func (b *Broadcaster) NotifyMatched(userID string, match models.Match, agent models.AIAgent) {
	b.Server.BroadcastToRoom("/", userRoom(userID), "matched", map[string]interface{}{
		"matchId":   match.MatchID,
		"agentId":   agent.ID,
		"agentName": agent.Name,
		"channel":   match.MatchID,
	})
}

func userRoom(userID string) string {
	return "user:" + userID
}
