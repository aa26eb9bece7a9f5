package cloudlift

import (
	"encoding/json"
	"time"
)

// AppStatus represents the lifecycle status of a hosted application.
//
// The platform may introduce statuses the client does not know about yet, so
// AppStatus is an open string type rather than a closed enumeration. Compare
// against the named constants but be prepared for other values.
type AppStatus string

const (
	AppStatusRunning  AppStatus = "running"
	AppStatusStopped  AppStatus = "stopped"
	AppStatusBuilding AppStatus = "building"
	AppStatusError    AppStatus = "error"
	AppStatusStarting AppStatus = "starting"
	AppStatusStopping AppStatus = "stopping"
)

// App represents a hosted application.
//
// Apps are owned by the platform; the client only decodes what the server
// returns and never constructs or caches them. Fields the client does not
// model are kept in Extra and survive a decode/encode round trip.
type App struct {
	ID        string    `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"`
	Status    AppStatus `json:"status"     yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// Extra holds server-defined fields not modeled above.
	Extra map[string]interface{} `json:"-" yaml:"extra,omitempty"`
}

var appKnownFields = []string{"id", "name", "status", "created_at", "updated_at"}

// UnmarshalJSON decodes the known fields and collects everything else into Extra.
func (a *App) UnmarshalJSON(data []byte) error {
	type alias App

	var known alias

	err := json.Unmarshal(data, &known)
	if err != nil {
		return err
	}

	known.Extra, err = extraFields(data, appKnownFields)
	if err != nil {
		return err
	}

	*a = App(known)

	return nil
}

// MarshalJSON re-encodes the known fields merged with Extra.
func (a App) MarshalJSON() ([]byte, error) {
	type alias App

	return marshalWithExtra(alias(a), a.Extra)
}

// NetworkStats holds the network counters of an application.
type NetworkStats struct {
	In  float64 `json:"in"  yaml:"in"`
	Out float64 `json:"out" yaml:"out"`
}

// AppStats represents a point-in-time resource usage snapshot of an application.
type AppStats struct {
	CPU     float64      `json:"cpu"              yaml:"cpu"`
	Memory  float64      `json:"memory"           yaml:"memory"`
	Network NetworkStats `json:"network"          yaml:"network"`
	Uptime  *int64       `json:"uptime,omitempty" yaml:"uptime,omitempty"`

	// Extra holds server-defined fields not modeled above.
	Extra map[string]interface{} `json:"-" yaml:"extra,omitempty"`
}

var appStatsKnownFields = []string{"cpu", "memory", "network", "uptime"}

// UnmarshalJSON decodes the known fields and collects everything else into Extra.
func (s *AppStats) UnmarshalJSON(data []byte) error {
	type alias AppStats

	var known alias

	err := json.Unmarshal(data, &known)
	if err != nil {
		return err
	}

	known.Extra, err = extraFields(data, appStatsKnownFields)
	if err != nil {
		return err
	}

	*s = AppStats(known)

	return nil
}

// MarshalJSON re-encodes the known fields merged with Extra.
func (s AppStats) MarshalJSON() ([]byte, error) {
	type alias AppStats

	return marshalWithExtra(alias(s), s.Extra)
}

// AppLogs represents the recent log output of an application as a single
// opaque text blob.
type AppLogs struct {
	Logs string `json:"logs" yaml:"logs"`

	// Extra holds server-defined fields not modeled above.
	Extra map[string]interface{} `json:"-" yaml:"extra,omitempty"`
}

var appLogsKnownFields = []string{"logs"}

// UnmarshalJSON decodes the known fields and collects everything else into Extra.
func (l *AppLogs) UnmarshalJSON(data []byte) error {
	type alias AppLogs

	var known alias

	err := json.Unmarshal(data, &known)
	if err != nil {
		return err
	}

	known.Extra, err = extraFields(data, appLogsKnownFields)
	if err != nil {
		return err
	}

	*l = AppLogs(known)

	return nil
}

// MarshalJSON re-encodes the known fields merged with Extra.
func (l AppLogs) MarshalJSON() ([]byte, error) {
	type alias AppLogs

	return marshalWithExtra(alias(l), l.Extra)
}

// UploadRequest describes a new deployment to push to the platform.
type UploadRequest struct {
	// File is the deployment archive. Required.
	File []byte
	// FileName is the form file name sent for the archive. Defaults to "app.zip".
	FileName string
	// Name optionally sets the display name of the application.
	Name string
	// Extra holds additional scalar form fields sent alongside the archive.
	Extra map[string]string
}

// DeleteResult is the acknowledgment returned when an application is deleted.
type DeleteResult struct {
	Success bool `json:"success" yaml:"success"`
}

// extraFields unmarshals data into a generic map and strips the known keys,
// returning nil when nothing unknown remains.
func extraFields(data []byte, known []string) (map[string]interface{}, error) {
	var all map[string]interface{}

	err := json.Unmarshal(data, &all)
	if err != nil {
		return nil, err
	}

	for _, key := range known {
		delete(all, key)
	}

	if len(all) == 0 {
		return nil, nil
	}

	return all, nil
}

// marshalWithExtra encodes the known fields of v and merges extra keys into
// the resulting object. Known fields win on key collisions.
func marshalWithExtra(v interface{}, extra map[string]interface{}) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]interface{}

	err = json.Unmarshal(base, &merged)
	if err != nil {
		return nil, err
	}

	for key, value := range extra {
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}

	return json.Marshal(merged)
}
