package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	ownerRepo        repository.OwnerRepository
	refreshTokenRepo repository.RefreshTokenRepository
	deviceRepo       repository.DeviceRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	OwnerRepo        repository.OwnerRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	DeviceRepo       repository.DeviceRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:        params.TxManager,
		ownerRepo:        params.OwnerRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		deviceRepo:       params.DeviceRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterOwner creates a dashboard account for a business owner.
func (srv *accountService) RegisterOwner(ctx context.Context, input *usecase.RegisterOwnerInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Info("Starting owner registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration",
			slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	owner := &entity.Owner{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Roles:        []string{entity.RoleAccount},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.ownerRepo.CreateOwner(ctx, owner); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrOwnerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create owner during registration")
	}

	srv.log(ctx).Debug("Owner registered", slog.Any("ownerID", owner.ID))

	return &usecase.RegisterOutput{Owner: owner}, nil
}

// Login verifies the credentials and issues a token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Debug("Starting owner login", slog.String("email", email))

	owner, err := srv.ownerRepo.FindOwnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find owner by email")
	}

	// bcrypt is CPU-bound; checked outside any transaction.
	if !srv.hasher.Check(input.Password, owner.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.issueTokens(ctx, owner)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Owner logged in", slog.Any("ownerID", owner.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Owner:        owner,
	}, nil
}

// issueTokens generates a token pair and persists the refresh token hash.
func (srv *accountService) issueTokens(ctx context.Context, owner *entity.Owner) (string, string, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(owner.ID, owner.Roles)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: time.Now(),
	}

	if err := srv.refreshTokenRepo.StoreRefreshToken(ctx, record); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshToken, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked and
// a new pair is issued.
func (srv *accountService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to rotate refresh token")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}
	if claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("token is not a refresh token")
	}

	var output *usecase.RefreshOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		ownerRepo := repoFactory.NewOwnerRepository()

		record, err := refreshRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token by hash")
		}
		if record.Revoked() || record.Expired(time.Now()) {
			return domainerrors.ErrRefreshTokenInvalid
		}

		owner, err := ownerRepo.FindOwnerByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find owner by id")
		}

		// Rotation: the presented token dies with this transaction.
		if err := refreshRepo.RevokeRefreshToken(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(owner.ID, owner.Roles)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRecord := &entity.RefreshToken{
			ID:        uuid.New(),
			OwnerID:   owner.ID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: time.Now(),
		}
		if err := refreshRepo.StoreRefreshToken(ctx, newRecord); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes every active refresh token for the owner.
func (srv *accountService) Logout(ctx context.Context, ownerID uuid.UUID) error {
	if err := srv.refreshTokenRepo.RevokeRefreshTokensByOwner(ctx, ownerID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	srv.log(ctx).Info("Owner logged out", slog.Any("ownerID", ownerID))

	return nil
}

// GetProfile returns the owner's account profile.
func (srv *accountService) GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.Owner, error) {
	owner, err := srv.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by id")
	}

	return owner, nil
}

// RegisterDevice stores a push-notification target for the owner.
func (srv *accountService) RegisterDevice(ctx context.Context, ownerID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.OwnerDevice, error) {
	device := &entity.OwnerDevice{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		FCMToken:  input.FCMToken,
		Platform:  input.Platform,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := srv.deviceRepo.RegisterDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Debug("Device registered",
		slog.Any("ownerID", ownerID),
		slog.String("platform", input.Platform))

	return device, nil
}

// RemoveDevice deletes one of the owner's push registrations by token.
func (srv *accountService) RemoveDevice(ctx context.Context, ownerID uuid.UUID, fcmToken string) error {
	devices, err := srv.deviceRepo.FindDevicesByOwner(ctx, ownerID)
	if err != nil {
		return errors.Wrap(err, "failed to find devices by owner")
	}

	for _, device := range devices {
		if device.FCMToken == fcmToken {
			if err := srv.deviceRepo.DeleteDevicesByToken(ctx, []string{fcmToken}); err != nil {
				return errors.Wrap(err, "failed to delete device")
			}

			return nil
		}
	}

	return repository.ErrDeviceNotFound
}
