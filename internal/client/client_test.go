package client

import (
	"testing"
	"time"

	"github.com/cloudlift-io/cloudlift-client/internal/constants"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresToken(t *testing.T) {
	tests := []struct {
		name   string
		config *cloudlift.Config
	}{
		{
			name:   "nil config",
			config: nil,
		},
		{
			name:   "empty token",
			config: &cloudlift.Config{},
		},
		{
			name:   "whitespace token",
			config: &cloudlift.Config{Token: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.True(t, cloudlift.IsValidation(err))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(&cloudlift.Config{Token: "test-token"})
	require.NoError(t, err)

	config := client.Config()
	assert.Equal(t, constants.DefaultBaseURL, config.BaseURL)
	assert.Equal(t, constants.DefaultHTTPTimeout, config.Timeout)
	assert.Equal(t, constants.DefaultUserAgent, config.UserAgent)
	assert.False(t, config.Debug)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		expected string
	}{
		{
			name:     "trailing slash stripped",
			baseURL:  "https://host/v1/",
			expected: "https://host/v1",
		},
		{
			name:     "scheme added",
			baseURL:  "host/v1",
			expected: "https://host/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(&cloudlift.Config{Token: "test-token", BaseURL: tt.baseURL})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, client.Config().BaseURL)
		})
	}
}

func TestNew_Overrides(t *testing.T) {
	client, err := New(&cloudlift.Config{
		Token:     "test-token",
		Timeout:   5 * time.Second,
		UserAgent: "custom-agent/2.0",
		Debug:     true,
	})
	require.NoError(t, err)

	config := client.Config()
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, "custom-agent/2.0", config.UserAgent)
	assert.True(t, config.Debug)
}
