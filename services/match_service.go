package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"companion_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// newMatchID generates match identifiers; tests pin it to fixed values.
var newMatchID = uuid.NewString

type MatchService struct {
	Dynamo DB
}

// CreateMatch persists a new match for (userID, agentID) and returns it with
// its generated identifier. Duplicate pairs are not rejected here; the
// catalog UI stops showing an agent once matched, and that is the only guard.
func (ms *MatchService) CreateMatch(ctx context.Context, userID, agentID string) (*models.Match, error) {
	match := models.Match{
		MatchID:   newMatchID(),
		UserID:    userID,
		AgentID:   agentID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := ms.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return &match, nil
}

// GetMatch retrieves a match by ID
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match '%s': %w", matchID, err)
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to parse match: %w", err)
	}
	return &match, nil
}

// GetMatchesForUser retrieves all matches for a user, newest first.
func (ms *MatchService) GetMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := ms.Dynamo.ScanItems(ctx, models.MatchesTable, map[string]string{"userId": userID}, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for user '%s': %w", userID, err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt > matches[j].CreatedAt
	})
	return matches, nil
}

// GetRecentMatches returns the newest matches across all users, capped at limit.
func (ms *MatchService) GetRecentMatches(ctx context.Context, limit int) ([]models.Match, error) {
	var matches []models.Match
	if err := ms.Dynamo.ScanItems(ctx, models.MatchesTable, nil, &matches); err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt > matches[j].CreatedAt
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// DeleteMatch removes a match record. Only the provisioning flow uses this,
// to unwind a match whose channel could not be created.
func (ms *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	if err := ms.Dynamo.DeleteItem(ctx, models.MatchesTable, key); err != nil {
		return fmt.Errorf("failed to delete match '%s': %w", matchID, err)
	}
	return nil
}
