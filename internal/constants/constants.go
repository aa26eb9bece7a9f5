package constants

import "time"

// Platform endpoints.
const (
	// DefaultBaseURL is the production Cloudlift API endpoint.
	DefaultBaseURL = "https://api.cloudlift.io/v1"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Client identification.
const (
	// ClientVersion is the version reported in the User-Agent header.
	ClientVersion = "1.0.0"

	// DefaultUserAgent identifies this client to the platform.
	DefaultUserAgent = "cloudlift-client-go/" + ClientVersion
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
