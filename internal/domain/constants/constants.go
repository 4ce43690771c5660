// Package constants holds shared application-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
