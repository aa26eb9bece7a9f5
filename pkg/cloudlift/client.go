package cloudlift

import (
	"context"
	"time"
)

// AppsClient provides access to application resources.
type AppsClient interface {
	// List returns every application the token has access to.
	List(ctx context.Context) ([]App, error)
	// Get returns a single application by id.
	Get(ctx context.Context, appID string) (*App, error)
	// Logs returns the recent log output of an application.
	Logs(ctx context.Context, appID string) (*AppLogs, error)
	// Stats returns a resource usage snapshot of an application.
	Stats(ctx context.Context, appID string) (*AppStats, error)
	// Upload pushes a new deployment archive and returns the resulting application.
	Upload(ctx context.Context, request *UploadRequest) (*App, error)
	// Start starts a stopped application.
	Start(ctx context.Context, appID string) (*App, error)
	// Stop stops a running application.
	Stop(ctx context.Context, appID string) (*App, error)
	// Restart restarts an application.
	Restart(ctx context.Context, appID string) (*App, error)
	// Rebuild rebuilds an application from its last deployment.
	Rebuild(ctx context.Context, appID string) (*App, error)
	// Delete removes an application permanently.
	Delete(ctx context.Context, appID string) (*DeleteResult, error)
}

// Client is the top-level Cloudlift API client.
type Client interface {
	// Apps returns the applications resource client.
	Apps() AppsClient
	// Config returns the resolved, read-only client configuration.
	Config() ResolvedConfig
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cloudlift.Client.
//
// Token is the only required field. The remaining fields default to the
// platform production endpoint, a 30 second timeout, and no debug tracing.
// The configuration is resolved once at construction and cannot be changed
// afterwards; build a new client to change it.
type Config struct {
	// Token is the API token sent as a Bearer credential on every request.
	// Required; construction fails before any network activity when empty.
	Token string

	// BaseURL overrides the platform API endpoint. A trailing slash is
	// stripped and "https://" is assumed when no scheme is present.
	BaseURL string

	// Timeout bounds each individual request. An expired timeout aborts the
	// in-flight call and surfaces a timeout error. Defaults to 30s.
	Timeout time.Duration

	// Debug enables request/response trace logging through Logger.
	Debug bool

	// Logger receives debug traces. When Debug is set and Logger is nil, a
	// plain stderr logger is used.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// ResolvedConfig is the effective, immutable configuration of a constructed
// client, exposed for introspection.
type ResolvedConfig struct {
	BaseURL   string        `json:"base_url"   yaml:"base_url"`
	Timeout   time.Duration `json:"timeout"    yaml:"timeout"`
	Debug     bool          `json:"debug"      yaml:"debug"`
	UserAgent string        `json:"user_agent" yaml:"user_agent"`
}
