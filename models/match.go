package models

// Match links a user to an agent after an accepted swipe. The chat channel
// for the pair reuses the match ID as its channel ID.
type Match struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	AgentID   string `dynamodbav:"agentId" json:"agentId"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Timestamp of creation
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
