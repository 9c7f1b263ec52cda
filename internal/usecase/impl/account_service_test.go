package impl

import (
	"context"
	"testing"
	"time"

	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	mockRepo "detailers/internal/mocks/repository"
	mockSvc "detailers/internal/mocks/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	ownerRepo        *mockRepo.MockOwnerRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		OwnerRepo:        ownerRepo,
		RefreshTokenRepo: refreshTokenRepo,
		DeviceRepo:       deviceRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:          svc,
		txManager:        txManager,
		ownerRepo:        ownerRepo,
		refreshTokenRepo: refreshTokenRepo,
		deviceRepo:       deviceRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAccountService_RegisterOwner_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterOwnerInput{
		DisplayName: "Sam Rivera",
		Email:       "Sam@Example.com",
		Password:    "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.ownerRepo.EXPECT().
		CreateOwner(ctx, mock.AnythingOfType("*entity.Owner")).
		Return(nil)

	output, err := fx.service.RegisterOwner(ctx, input)
	require.NoError(t, err)

	// Email is normalized to lower case before storage.
	assert.Equal(t, "sam@example.com", output.Owner.Email)
	assert.Equal(t, []string{entity.RoleAccount}, output.Owner.Roles)
	assert.Equal(t, "hashed_password", output.Owner.PasswordHash)
}

func TestAccountService_RegisterOwner_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterOwnerInput{Email: "sam@example.com", Password: "weak"}

	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.RegisterOwner(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_RegisterOwner_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterOwnerInput{Email: "sam@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.ownerRepo.EXPECT().
		CreateOwner(ctx, mock.AnythingOfType("*entity.Owner")).
		Return(repository.ErrEmailTaken)

	_, err := fx.service.RegisterOwner(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	owner := &entity.Owner{
		ID:           uuid.New(),
		Email:        "sam@example.com",
		PasswordHash: "hashed_password",
		Roles:        []string{entity.RoleAccount},
	}

	fx.ownerRepo.EXPECT().FindOwnerByEmail(ctx, "sam@example.com").Return(owner, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(owner.ID, owner.Roles).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.Equal(t, owner.ID, token.OwnerID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Sam@Example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, owner, output.Owner)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	owner := &entity.Owner{ID: uuid.New(), Email: "sam@example.com", PasswordHash: "hashed_password"}

	fx.ownerRepo.EXPECT().FindOwnerByEmail(ctx, "sam@example.com").Return(owner, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "sam@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.ownerRepo.EXPECT().
		FindOwnerByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrOwnerNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_RefreshTokens_Rotation(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	owner := &entity.Owner{ID: uuid.New(), Roles: []string{entity.RoleAccount, entity.RoleOwner}}
	record := &entity.RefreshToken{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.TokenClaims{UserID: owner.ID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().
		GenerateTokens(owner.ID, owner.Roles).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			txOwnerRepo := mockRepo.NewMockOwnerRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)
			mockFactory.EXPECT().NewOwnerRepository().Return(txOwnerRepo)

			txRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(record, nil)
			txOwnerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
			txRefreshRepo.EXPECT().RevokeRefreshToken(ctx, record.ID).Return(nil)
			txRefreshRepo.EXPECT().
				StoreRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
				Run(func(ctx context.Context, token *entity.RefreshToken) {
					assert.Equal(t, "new-hash", token.TokenHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshTokens(ctx, "old-refresh")
	require.NoError(t, err)

	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAccountService_RefreshTokens_AccessTokenRejected(t *testing.T) {
	fx := createTestAccountService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.TokenClaims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := fx.service.RefreshTokens(context.Background(), "access-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_RefreshTokens_RevokedToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	revokedAt := time.Now()
	record := &entity.RefreshToken{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.TokenClaims{UserID: ownerID, Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			txOwnerRepo := mockRepo.NewMockOwnerRepository(t)

			mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)
			mockFactory.EXPECT().NewOwnerRepository().Return(txOwnerRepo)

			txRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "old-hash").Return(record, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.RefreshTokens(ctx, "old-refresh")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_Logout(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.refreshTokenRepo.EXPECT().RevokeRefreshTokensByOwner(ctx, ownerID).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, ownerID))
}

func TestAccountService_RegisterDevice(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().
		RegisterDevice(ctx, mock.AnythingOfType("*entity.OwnerDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, ownerID, &usecase.RegisterDeviceInput{
		FCMToken: "token-abc",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, device.OwnerID)
	assert.Equal(t, "token-abc", device.FCMToken)
}

func TestAccountService_RemoveDevice_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByOwner(ctx, ownerID).
		Return([]*entity.OwnerDevice{{OwnerID: ownerID, FCMToken: "other-token"}}, nil)

	err := fx.service.RemoveDevice(ctx, ownerID, "missing-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestAccountService_RemoveDevice_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDevicesByOwner(ctx, ownerID).
		Return([]*entity.OwnerDevice{{OwnerID: ownerID, FCMToken: "token-abc"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByToken(ctx, []string{"token-abc"}).Return(nil)

	require.NoError(t, fx.service.RemoveDevice(ctx, ownerID, "token-abc"))
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.ownerRepo.EXPECT().
		FindOwnerByID(ctx, ownerID).
		Return(nil, repository.ErrOwnerNotFound)

	_, err := fx.service.GetProfile(ctx, ownerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerNotFound)
}

func TestAccountService_Login_HashFailurePropagates(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterOwnerInput{Email: "sam@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	_, err := fx.service.RegisterOwner(ctx, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash password")
}
