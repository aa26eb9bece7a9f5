package cloudlift

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"id": "app-1",
		"name": "my-api",
		"status": "running",
		"created_at": "2024-03-01T10:00:00Z",
		"updated_at": "2024-03-02T11:30:00Z",
		"region": "eu-west",
		"plan": {"tier": "pro", "ram": 512}
	}`)

	var app App
	require.NoError(t, json.Unmarshal(data, &app))

	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, "my-api", app.Name)
	assert.Equal(t, AppStatusRunning, app.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), app.CreatedAt)

	// Unknown keys land in Extra, known keys do not.
	assert.Equal(t, "eu-west", app.Extra["region"])
	assert.Contains(t, app.Extra, "plan")
	assert.NotContains(t, app.Extra, "id")
	assert.NotContains(t, app.Extra, "status")
}

func TestApp_UnknownStatus(t *testing.T) {
	var app App
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","status":"hibernating"}`), &app))

	assert.Equal(t, AppStatus("hibernating"), app.Status)
}

func TestApp_MarshalRoundTrip(t *testing.T) {
	original := []byte(`{
		"id": "app-1",
		"name": "my-api",
		"status": "stopped",
		"created_at": "2024-03-01T10:00:00Z",
		"updated_at": "2024-03-02T11:30:00Z",
		"region": "eu-west",
		"custom_domain": "api.example.com"
	}`)

	var app App
	require.NoError(t, json.Unmarshal(original, &app))

	encoded, err := json.Marshal(&app)
	require.NoError(t, err)

	assert.JSONEq(t, string(original), string(encoded))
}

func TestApp_MarshalWithoutExtra(t *testing.T) {
	app := App{ID: "a", Name: "n", Status: AppStatusRunning}

	encoded, err := json.Marshal(app)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "a", decoded["id"])
	assert.NotContains(t, decoded, "Extra")
}

func TestAppStats_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"cpu": 12.5,
		"memory": 256.0,
		"network": {"in": 1024, "out": 2048},
		"uptime": 86400,
		"requests": 917
	}`)

	var stats AppStats
	require.NoError(t, json.Unmarshal(data, &stats))

	assert.InDelta(t, 12.5, stats.CPU, 0.001)
	assert.InDelta(t, 256.0, stats.Memory, 0.001)
	assert.InDelta(t, 1024, stats.Network.In, 0.001)
	assert.InDelta(t, 2048, stats.Network.Out, 0.001)
	require.NotNil(t, stats.Uptime)
	assert.Equal(t, int64(86400), *stats.Uptime)
	assert.Equal(t, float64(917), stats.Extra["requests"])
}

func TestAppStats_OptionalUptime(t *testing.T) {
	var stats AppStats
	require.NoError(t, json.Unmarshal([]byte(`{"cpu":1,"memory":2,"network":{"in":0,"out":0}}`), &stats))

	assert.Nil(t, stats.Uptime)
	assert.Nil(t, stats.Extra)

	encoded, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "uptime")
}

func TestAppLogs_RoundTrip(t *testing.T) {
	original := []byte(`{"logs":"line one\nline two\n","truncated":true}`)

	var logs AppLogs
	require.NoError(t, json.Unmarshal(original, &logs))

	assert.Equal(t, "line one\nline two\n", logs.Logs)
	assert.Equal(t, true, logs.Extra["truncated"])

	encoded, err := json.Marshal(&logs)
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(encoded))
}
