// Package constants contains values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used for production deployments.
	EnvProduction = "production"
)

// Pub/Sub provider names accepted in config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// DefaultSearchRadiusKm is applied in pull mode when a profile has no radius.
const DefaultSearchRadiusKm = 50

// Valid profile search radius range, in kilometers.
const (
	MinSearchRadiusKm = 1
	MaxSearchRadiusKm = 50
)

// FCMBatchSize is the per-request token limit of FCM multicast.
const FCMBatchSize = 500

// MaxRecipientsPerEvent bounds how many users one push event carries, so a
// single worker request stays within a few FCM batches.
const MaxRecipientsPerEvent = 2000
