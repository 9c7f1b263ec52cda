package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks how far along a captured lead is.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Valid reports whether the status is a known lead state.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	}

	return false
}

// Lead is a quote request captured from a listing page form.
type Lead struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	AircraftType string     `json:"aircraft_type,omitempty"` // e.g. "Citation XLS", "Gulfstream G650".
	Message      string     `json:"message,omitempty"`
	Status       LeadStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
