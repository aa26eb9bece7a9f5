package cloudlift

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "validation",
			err:      NewValidationError("app id is required"),
			expected: "validation error: app id is required",
		},
		{
			name:     "api",
			err:      NewAPIError(404, []byte(`{"message":"not found"}`), "/apps/x"),
			expected: "api error: status 404 on /apps/x: not found",
		},
		{
			name:     "timeout",
			err:      NewTimeoutError("/apps", 30*time.Second, nil),
			expected: "timeout error: /apps exceeded 30s",
		},
		{
			name:     "transport",
			err:      NewTransportError("/apps", errors.New("connection refused")),
			expected: "transport error: /apps: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewAPIError_Message(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "message field",
			body:     `{"message":"not found"}`,
			expected: "not found",
		},
		{
			name:     "error field",
			body:     `{"error":"boom"}`,
			expected: "boom",
		},
		{
			name:     "plain text body",
			body:     "Bad Gateway",
			expected: "Bad Gateway",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(500, []byte(tt.body), "/apps")
			assert.Equal(t, tt.expected, err.Message)
		})
	}
}

func TestNewAPIError_BodyVerbatim(t *testing.T) {
	body := []byte(`{"message":"not found","trace_id":"abc-123"}`)
	err := NewAPIError(404, body, "/apps/x")

	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, "/apps/x", err.Path)
	assert.JSONEq(t, string(body), string(err.Body))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(err.Body, &decoded))
	assert.Equal(t, "abc-123", decoded["trace_id"])
}

func TestNewDecodeError(t *testing.T) {
	cause := errors.New("invalid character 'o' in literal null (expecting 'u')")
	err := NewDecodeError(200, []byte("not json"), "/apps", cause)

	assert.Equal(t, ErrorKindAPI, err.Kind)
	assert.Equal(t, 200, err.StatusCode)
	assert.Equal(t, "/apps", err.Path)
	assert.Equal(t, "not json", string(err.Body))
	assert.Contains(t, err.Message, "malformed response body")
	assert.True(t, errors.Is(err, cause))
}

func TestKindHelpers(t *testing.T) {
	valErr := NewValidationError("bad")
	apiErr := NewAPIError(500, nil, "/apps")
	timeoutErr := NewTimeoutError("/apps", time.Second, nil)
	transportErr := NewTransportError("/apps", errors.New("reset"))

	assert.True(t, IsValidation(valErr))
	assert.True(t, IsAPI(apiErr))
	assert.True(t, IsTimeout(timeoutErr))
	assert.True(t, IsTransport(transportErr))

	assert.False(t, IsValidation(apiErr))
	assert.False(t, IsAPI(valErr))
	assert.False(t, IsTimeout(transportErr))
	assert.False(t, IsTransport(timeoutErr))
}

func TestKindHelpers_Wrapped(t *testing.T) {
	err := fmt.Errorf("getting app: %w", NewAPIError(404, nil, "/apps/x"))

	assert.True(t, IsAPI(err))

	sdkErr := AsError(err)
	require.NotNil(t, sdkErr)
	assert.Equal(t, ErrorKindAPI, sdkErr.Kind)
	assert.Equal(t, 404, sdkErr.StatusCode)
}

func TestAsError_Foreign(t *testing.T) {
	assert.Nil(t, AsError(errors.New("not ours")))
	assert.Nil(t, AsError(nil))
	assert.False(t, IsAPI(errors.New("not ours")))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewTransportError("/apps", cause)

	assert.ErrorIs(t, err, cause)
}

func TestTimeoutError_CarriesTimeout(t *testing.T) {
	err := NewTimeoutError("/apps/x/logs", 250*time.Millisecond, nil)

	assert.Equal(t, "/apps/x/logs", err.Path)
	assert.Equal(t, 250*time.Millisecond, err.Timeout)
}
