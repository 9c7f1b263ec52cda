package usecase

import (
	"context"

	"detailers/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterOwnerInput defines the data required to register a dashboard account.
type RegisterOwnerInput struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginInput defines the data required for an owner to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterDeviceInput registers a push-notification target for an owner.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token"`
	Platform string `json:"platform"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Owner *entity.Owner `json:"owner"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	Owner        *entity.Owner `json:"owner"`
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccountUsecase defines the interface for owner-account business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterOwner(ctx context.Context, input *RegisterOwnerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshTokens rotates a refresh token: the presented token is revoked
	// and a new pair is issued.
	RefreshTokens(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes every active refresh token for the owner.
	Logout(ctx context.Context, ownerID uuid.UUID) error

	// GetProfile returns the owner's account profile.
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.Owner, error)

	// Push device management
	RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *RegisterDeviceInput) (*entity.OwnerDevice, error)
	RemoveDevice(ctx context.Context, ownerID uuid.UUID, fcmToken string) error
}
