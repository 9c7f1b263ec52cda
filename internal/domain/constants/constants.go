// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the lead topic.
const (
	EventTypeLeadCreated   = "lead.created"
	EventTypeClaimVerified = "claim.verified"
)
