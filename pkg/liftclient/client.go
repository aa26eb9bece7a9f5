// Package liftclient provides the main entry point for creating Cloudlift API clients
package liftclient

import (
	"github.com/cloudlift-io/cloudlift-client/internal/client"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
)

// New creates a new Cloudlift API client from the given configuration.
//
// The token is required and validated synchronously; construction never
// touches the network. The base URL defaults to the production endpoint and
// is normalized by trimming a trailing slash and adding "https://" when no
// scheme is present.
func New(config *cloudlift.Config) (cloudlift.Client, error) {
	return client.New(config)
}

// NewWithToken creates a new client against the production endpoint.
func NewWithToken(token string) (cloudlift.Client, error) {
	return New(&cloudlift.Config{
		Token: token,
	})
}

// NewWithEndpoint creates a new client against a specific API endpoint.
func NewWithEndpoint(token, endpoint string) (cloudlift.Client, error) {
	return New(&cloudlift.Config{
		Token:   token,
		BaseURL: endpoint,
	})
}
