// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events over HTTP to a local worker endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EventTypeOrderCreated is emitted after a successful order settlement.
	EventTypeOrderCreated = "order.created"
	// EventTypeReviewSubmitted is emitted after a customer submits a review.
	EventTypeReviewSubmitted = "review.submitted"
)
