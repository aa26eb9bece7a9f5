package liftclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/cloudlift-io/cloudlift-client/pkg/liftclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func TestNew_EmptyToken(t *testing.T) {
	var calls int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	client, err := liftclient.New(&cloudlift.Config{BaseURL: server.URL})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, cloudlift.IsValidation(err))

	// Construction must fail before any network activity.
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func TestNew_BaseURLNormalization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A normalized base never produces a double separator.
		assert.Equal(t, "/v1/apps", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]cloudlift.App{})
	}))
	defer server.Close()

	client, err := liftclient.New(&cloudlift.Config{
		Token:   "test-token",
		BaseURL: server.URL + "/v1/",
	})
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/v1", client.Config().BaseURL)

	_, err = client.Apps().List(context.Background())
	require.NoError(t, err)
}

func TestNewWithToken(t *testing.T) {
	client, err := liftclient.NewWithToken("test-token")
	require.NoError(t, err)
	assert.Equal(t, "https://api.cloudlift.io/v1", client.Config().BaseURL)
}

func TestNewWithEndpoint(t *testing.T) {
	client, err := liftclient.NewWithEndpoint("test-token", "https://staging.example.com/v1/")
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/v1", client.Config().BaseURL)
}

func TestNewWithEndpoint_DefaultsWhenEmpty(t *testing.T) {
	client, err := liftclient.NewWithEndpoint("test-token", "")
	require.NoError(t, err)
	assert.Equal(t, "https://api.cloudlift.io/v1", client.Config().BaseURL)
}

func TestDebugTracing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]cloudlift.App{})
	}))
	defer server.Close()

	logger := &recordingLogger{}

	client, err := liftclient.New(&cloudlift.Config{
		Token:   "test-token",
		BaseURL: server.URL,
		Debug:   true,
		Logger:  logger,
	})
	require.NoError(t, err)

	_, err = client.Apps().List(context.Background())
	require.NoError(t, err)

	require.Len(t, logger.entries, 2)
	assert.Equal(t, "HTTP Request", logger.entries[0])
	assert.Equal(t, "HTTP Response", logger.entries[1])
}
