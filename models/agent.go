package models

// AIAgent defines a chat persona from the agent catalog. Agents are created
// out-of-band and are read-only to this service.
type AIAgent struct {
	ID     string   `dynamodbav:"id" json:"id"`
	Name   string   `dynamodbav:"name" json:"name"`
	Bio    string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Avatar string   `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	Traits []string `dynamodbav:"traits,omitempty" json:"traits,omitempty"`
	Gender string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
}

// AIAgentsTable is the DynamoDB table name for the agent catalog
const AIAgentsTable = "AIAgents"
