// Package constants holds configuration literals shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderMemory = "memory"
	PubSubProviderGoogle = "google"
)

// Session store backends.
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)
