package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for owner-account persistence.
var (
	// ErrOwnerNotFound is returned when an owner account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// OwnerRepository defines the interface for owner-account database operations.
type OwnerRepository interface {
	// CreateOwner persists a new owner account.
	CreateOwner(ctx context.Context, owner *entity.Owner) error

	// FindOwnerByID retrieves an owner by its unique ID.
	FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error)

	// FindOwnerByEmail retrieves an owner by email, case-insensitive.
	FindOwnerByEmail(ctx context.Context, email string) (*entity.Owner, error)

	// UpdateOwner updates an existing owner record, including roles.
	UpdateOwner(ctx context.Context, owner *entity.Owner) error
}
