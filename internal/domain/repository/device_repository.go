package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device registration is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device database operations.
type DeviceRepository interface {
	// RegisterDevice stores a device token for an owner, replacing any
	// existing registration with the same token.
	RegisterDevice(ctx context.Context, device *entity.OwnerDevice) error

	// FindDevicesByOwner retrieves all registered devices for an owner.
	FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.OwnerDevice, error)

	// DeleteDevicesByToken removes registrations whose token the push
	// provider reported as invalid or unregistered.
	DeleteDevicesByToken(ctx context.Context, tokens []string) error
}
