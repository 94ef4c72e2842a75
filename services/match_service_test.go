package services

import (
	"context"
	"testing"

	"companion_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetMatch(t *testing.T) {
	db := newFakeDB()
	ms := &MatchService{Dynamo: db}

	created, err := ms.CreateMatch(context.Background(), "user-1", "agent-9")
	require.NoError(t, err)
	assert.NotEmpty(t, created.MatchID)
	assert.NotEmpty(t, created.CreatedAt)

	fetched, err := ms.GetMatch(context.Background(), created.MatchID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", fetched.UserID)
	assert.Equal(t, "agent-9", fetched.AgentID)
}

func TestGetMatchNotFound(t *testing.T) {
	ms := &MatchService{Dynamo: newFakeDB()}

	_, err := ms.GetMatch(context.Background(), "missing")
	require.Error(t, err)
}

func TestGetMatchesForUserNewestFirst(t *testing.T) {
	db := newFakeDB()
	ms := &MatchService{Dynamo: db}

	require.NoError(t, db.PutItem(context.Background(), models.MatchesTable,
		models.Match{MatchID: "m-1", UserID: "user-1", AgentID: "agent-1", CreatedAt: "2026-01-01T10:00:00Z"}))
	require.NoError(t, db.PutItem(context.Background(), models.MatchesTable,
		models.Match{MatchID: "m-2", UserID: "user-1", AgentID: "agent-2", CreatedAt: "2026-01-02T10:00:00Z"}))
	require.NoError(t, db.PutItem(context.Background(), models.MatchesTable,
		models.Match{MatchID: "m-3", UserID: "user-2", AgentID: "agent-3", CreatedAt: "2026-01-03T10:00:00Z"}))

	matches, err := ms.GetMatchesForUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "m-2", matches[0].MatchID)
	assert.Equal(t, "m-1", matches[1].MatchID)
}

func TestGetRecentMatchesHonorsLimit(t *testing.T) {
	db := newFakeDB()
	ms := &MatchService{Dynamo: db}

	for _, m := range []models.Match{
		{MatchID: "m-1", UserID: "u", AgentID: "a", CreatedAt: "2026-01-01T10:00:00Z"},
		{MatchID: "m-2", UserID: "u", AgentID: "a", CreatedAt: "2026-01-02T10:00:00Z"},
		{MatchID: "m-3", UserID: "u", AgentID: "a", CreatedAt: "2026-01-03T10:00:00Z"},
		{MatchID: "m-4", UserID: "u", AgentID: "a", CreatedAt: "2026-01-04T10:00:00Z"},
	} {
		require.NoError(t, db.PutItem(context.Background(), models.MatchesTable, m))
	}

	matches, err := ms.GetRecentMatches(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "m-4", matches[0].MatchID)
}

func TestDeleteMatch(t *testing.T) {
	db := newFakeDB()
	ms := &MatchService{Dynamo: db}

	created, err := ms.CreateMatch(context.Background(), "user-1", "agent-9")
	require.NoError(t, err)

	require.NoError(t, ms.DeleteMatch(context.Background(), created.MatchID))
	assert.Zero(t, db.count(models.MatchesTable))
}
