package services

import (
	"context"
	"fmt"
	"log"

	"companion_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo DB
}

// GetUserProfile retrieves a user profile by ID. A missing profile surfaces
// as an error, never as a nil success.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for '%s': %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile updates the nickname and preferences of a profile.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID, username string, prefs models.UserPreferences) (*models.UserProfile, error) {
	prefsAttr, err := attributevalue.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	updateExpression := "SET username = :username, preferences = :preferences"
	attrs, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		map[string]types.AttributeValue{
			":username":    &types.AttributeValueMemberS{Value: username},
			":preferences": prefsAttr,
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for '%s': %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(attrs, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse updated profile: %w", err)
	}
	return &profile, nil
}

// CompleteOnboarding stores the nickname and companion preferences collected
// during onboarding and flips the completion flag in one write.
func (ups *UserProfileService) CompleteOnboarding(ctx context.Context, userID, username string, prefs models.UserPreferences) (*models.UserProfile, error) {
	prefsAttr, err := attributevalue.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	updateExpression := "SET username = :username, preferences = :preferences, onboardingCompleted = :completed"
	attrs, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression,
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		map[string]types.AttributeValue{
			":username":    &types.AttributeValueMemberS{Value: username},
			":preferences": prefsAttr,
			":completed":   &types.AttributeValueMemberBOOL{Value: true},
		}, nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to complete onboarding for '%s': %w", userID, err)
	}

	log.Printf("Onboarding completed for user %s", userID)

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(attrs, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse updated profile: %w", err)
	}
	return &profile, nil
}
