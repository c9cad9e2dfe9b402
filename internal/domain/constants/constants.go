// Package constants holds shared domain-level constants.
package constants

const (
	// PubSubProviderGoogle selects Google Cloud Pub/Sub as the event transport.
	PubSubProviderGoogle = "google"

	// PubSubProviderLocal selects the local HTTP push simulator used in development.
	PubSubProviderLocal = "local"
)
