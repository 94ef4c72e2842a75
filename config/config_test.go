package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("STREAM_API_KEY", "key")
	t.Setenv("STREAM_API_SECRET", "secret")
	t.Setenv("AI_SERVER_URL", "http://localhost:5000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
}

func TestLoadRequiresStreamCredentials(t *testing.T) {
	t.Setenv("STREAM_API_KEY", "")
	t.Setenv("STREAM_API_SECRET", "")
	t.Setenv("AI_SERVER_URL", "http://localhost:5000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STREAM_API_KEY")
}

func TestLoadRequiresAIServerURL(t *testing.T) {
	t.Setenv("STREAM_API_KEY", "key")
	t.Setenv("STREAM_API_SECRET", "secret")
	t.Setenv("AI_SERVER_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_SERVER_URL")
}
