package models

// Swipe decisions derived from the release velocity of a card gesture
const (
	DecisionNone   = "none" // below threshold, card snaps back
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// AI agent runtime states per channel
const (
	AgentStopped  = "stopped"
	AgentStarting = "starting"
	AgentRunning  = "running"
	AgentStopping = "stopping"
)
