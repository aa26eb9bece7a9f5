// Package client implements the cloudlift.Client interface on top of the
// internal HTTP transport.
package client

import (
	"log"
	"os"
	"strings"

	"github.com/cloudlift-io/cloudlift-client/internal/constants"
	"github.com/cloudlift-io/cloudlift-client/internal/http"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
)

// Client implements the cloudlift.Client interface.
type Client struct {
	httpClient *http.Client
	config     cloudlift.ResolvedConfig

	apps cloudlift.AppsClient
}

// New creates a new Cloudlift API client. The token is validated before any
// transport is constructed; no network activity happens here.
func New(config *cloudlift.Config) (*Client, error) {
	if config == nil {
		return nil, cloudlift.NewValidationError("config is required")
	}

	if strings.TrimSpace(config.Token) == "" {
		return nil, cloudlift.NewValidationError("api token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = http.NormalizeEndpoint(baseURL)

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	logger := config.Logger
	if logger == nil && config.Debug {
		logger = &stderrLogger{}
	}

	httpOpts := []http.Option{
		http.WithTimeout(timeout),
		http.WithUserAgent(userAgent),
	}

	if logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, config.Token, httpOpts...),
		config: cloudlift.ResolvedConfig{
			BaseURL:   baseURL,
			Timeout:   timeout,
			Debug:     config.Debug,
			UserAgent: userAgent,
		},
	}

	client.apps = NewAppsClient(client.httpClient)

	return client, nil
}

// Apps implements cloudlift.Client.Apps.
func (c *Client) Apps() cloudlift.AppsClient {
	return c.apps
}

// Config implements cloudlift.Client.Config.
func (c *Client) Config() cloudlift.ResolvedConfig {
	return c.config
}

// stderrLogger is the fallback trace logger used when debug is enabled
// without an injected logger.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	log.New(os.Stderr, "", log.LstdFlags).Printf("[%s] %s %v", level, msg, fields)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
