package service

import (
	"context"
)

// LeadEvent is published on the lead topic when a lead is captured or a
// claim is verified. The worker consumes it asynchronously to fan out
// owner notifications.
type LeadEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing.
	EventType   string `json:"event_type"`           // constants.EventTypeLeadCreated etc.
	LeadID      string `json:"lead_id,omitempty"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	OwnerID     string `json:"owner_id,omitempty"` // Set when the listing is claimed.
	LeadName    string `json:"lead_name,omitempty"`
	Summary     string `json:"summary,omitempty"` // Short human-readable line for the push body.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLeadEvent publishes a lead event for async processing
	PublishLeadEvent(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
