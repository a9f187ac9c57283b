package dataapi

import "context"

// Client is the top-level DataAPI client. Resource accessors return
// clients scoped to one resource family; the remaining methods exercise
// platform-level endpoints.
type Client interface {
	Workflows() WorkflowsClient
	Projects() ProjectsClient
	Databases() DatabasesClient
	AIProviders() AIProvidersClient
	Users() UsersClient

	// GetVersion fetches build information for the server.
	GetVersion(ctx context.Context) (*APIVersion, error)

	// GetHealth fetches the server health report.
	GetHealth(ctx context.Context) (*HealthStatus, error)

	// TestConnection reports whether the server is reachable. It never
	// returns an error; unreachable servers report false.
	TestConnection(ctx context.Context) bool

	Config() *Config
	AuthProvider() AuthProvider
	SetAuthProvider(provider AuthProvider)

	// Close releases idle connections held by the underlying transport.
	Close() error
}
