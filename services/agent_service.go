package services

import (
	"context"
	"fmt"

	"companion_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AgentService reads the agent catalog. The catalog is written out-of-band;
// this service never mutates it.
type AgentService struct {
	Dynamo DB
}

// GetAgents retrieves the whole agent catalog, optionally narrowed to one
// gender. The catalog is small, so there is no pagination.
func (as *AgentService) GetAgents(ctx context.Context, gender string) ([]models.AIAgent, error) {
	var matchFields map[string]string
	if gender != "" {
		matchFields = map[string]string{"gender": gender}
	}

	var agents []models.AIAgent
	if err := as.Dynamo.ScanItems(ctx, models.AIAgentsTable, matchFields, &agents); err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}
	return agents, nil
}

// GetAgent retrieves a single agent by ID
func (as *AgentService) GetAgent(ctx context.Context, agentID string) (*models.AIAgent, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: agentID},
	}

	item, err := as.Dynamo.GetItem(ctx, models.AIAgentsTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent '%s': %w", agentID, err)
	}

	var agent models.AIAgent
	if err := attributevalue.UnmarshalMap(item, &agent); err != nil {
		return nil, fmt.Errorf("failed to parse agent: %w", err)
	}
	return &agent, nil
}
