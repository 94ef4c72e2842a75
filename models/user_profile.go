package models

// UserPreferences captures the companion preferences chosen during onboarding.
type UserPreferences struct {
	PreferredGender string   `dynamodbav:"preferredGender,omitempty" json:"preferredGender,omitempty"`
	PreferredTraits []string `dynamodbav:"preferredTraits,omitempty" json:"preferredTraits,omitempty"`
}

// UserProfile defines the structure for user profiles. The profile row is
// created on first authentication; this service only reads and updates it.
type UserProfile struct {
	UserID              string          `dynamodbav:"userId" json:"userId"`
	Username            string          `dynamodbav:"username,omitempty" json:"username,omitempty"`
	OnboardingCompleted bool            `dynamodbav:"onboardingCompleted" json:"onboardingCompleted"`
	Preferences         UserPreferences `dynamodbav:"preferences,omitempty" json:"preferences,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
