package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/constants"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/domain/service"
	"detailers/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationCodeDigits is the length of the numeric code delivered out of band.
const verificationCodeDigits = 6

// claimService implements the ClaimUsecase interface.
type claimService struct {
	txManager      repository.TransactionManager
	claimRepo      repository.ClaimRepository
	companyRepo    repository.CompanyRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ClaimRepo      repository.ClaimRepository
	CompanyRepo    repository.CompanyRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		txManager:      params.TxManager,
		claimRepo:      params.ClaimRepo,
		companyRepo:    params.CompanyRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartClaim opens a pending claim on an unclaimed listing.
func (srv *claimService) StartClaim(ctx context.Context, ownerID, companyID uuid.UUID) (*entity.Claim, error) {
	company, err := srv.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return nil, domainerrors.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}
	if company.IsClaimed {
		return nil, domainerrors.ErrCompanyAlreadyClaimed
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	claim := &entity.Claim{
		ID:               uuid.New(),
		CompanyID:        companyID,
		OwnerID:          ownerID,
		VerificationCode: code,
		Status:           entity.ClaimStatusPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := srv.claimRepo.CreateClaim(ctx, claim); err != nil {
		// The partial unique index on pending claims turns a race into a
		// clean conflict.
		if errors.Is(err, repository.ErrClaimAlreadyOpen) {
			return nil, repository.ErrClaimAlreadyOpen
		}

		return nil, errors.Wrap(err, "failed to create claim")
	}

	srv.log(ctx).Info("Claim started",
		slog.Any("claimID", claim.ID),
		slog.Any("companyID", companyID),
		slog.Any("ownerID", ownerID))

	return claim, nil
}

// generateVerificationCode returns a zero-padded random numeric code.
func generateVerificationCode() (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(verificationCodeDigits), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return fmt.Sprintf("%0*d", verificationCodeDigits, n), nil
}

// GenerateClaimInvite renders the QR invite PNG for a pending claim.
func (srv *claimService) GenerateClaimInvite(ctx context.Context, claimID uuid.UUID) ([]byte, error) {
	claim, err := srv.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim by id")
	}

	if claim.Status != entity.ClaimStatusPending {
		return nil, errors.Errorf("claim %s is not pending", claimID)
	}

	png, err := srv.qrcodeService.GenerateClaimQR(claim.CompanyID, claim.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate claim QR")
	}

	return png, nil
}

// VerifyClaim checks the verification code; on match it marks the claim
// verified, flags the listing claimed and grants the owner role. All three
// writes happen in one transaction.
func (srv *claimService) VerifyClaim(ctx context.Context, ownerID, claimID uuid.UUID, code string) (*entity.Claim, error) {
	var verified *entity.Claim
	var company *entity.Company

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		claimRepo := repoFactory.NewClaimRepository()
		companyRepo := repoFactory.NewCompanyRepository()
		ownerRepo := repoFactory.NewOwnerRepository()

		claim, err := claimRepo.FindClaimByID(ctx, claimID)
		if err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrClaimNotFound
			}

			return errors.Wrap(err, "failed to find claim by id")
		}

		if claim.OwnerID != ownerID {
			return domainerrors.ErrClaimNotFound
		}
		if claim.Status != entity.ClaimStatusPending {
			return domainerrors.ErrClaimNotFound
		}

		if subtle.ConstantTimeCompare([]byte(claim.VerificationCode), []byte(code)) != 1 {
			return domainerrors.ErrVerificationCodeMismatch
		}

		now := time.Now()
		claim.Status = entity.ClaimStatusVerified
		claim.VerifiedAt = &now
		claim.UpdatedAt = now

		if err := claimRepo.UpdateClaim(ctx, claim); err != nil {
			return errors.Wrap(err, "failed to update claim")
		}

		if err := companyRepo.MarkClaimed(ctx, claim.CompanyID); err != nil {
			return errors.Wrap(err, "failed to mark company claimed")
		}

		company, err = companyRepo.FindCompanyByID(ctx, claim.CompanyID)
		if err != nil {
			return errors.Wrap(err, "failed to find claimed company")
		}

		owner, err := ownerRepo.FindOwnerByID(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find owner by id")
		}
		if !owner.HasRole(entity.RoleOwner) {
			owner.Roles = append(owner.Roles, entity.RoleOwner)
			if err := ownerRepo.UpdateOwner(ctx, owner); err != nil {
				return errors.Wrap(err, "failed to grant owner role")
			}
		}

		verified = claim

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publishClaimVerified(ctx, company, verified)

	srv.log(ctx).Info("Claim verified",
		slog.Any("claimID", claimID),
		slog.Any("companyID", verified.CompanyID),
		slog.Any("ownerID", ownerID))

	return verified, nil
}

// publishClaimVerified emits the claim-verified event. Failures are logged, not returned.
func (srv *claimService) publishClaimVerified(ctx context.Context, company *entity.Company, claim *entity.Claim) {
	event := &service.LeadEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   constants.EventTypeClaimVerified,
		CompanyID:   claim.CompanyID.String(),
		CompanyName: company.Name,
		OwnerID:     claim.OwnerID.String(),
		Summary:     fmt.Sprintf("Your listing %q is now verified", company.Name),
	}

	if err := srv.eventPublisher.PublishLeadEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish claim event",
			slog.Any("claimID", claim.ID),
			slog.Any("error", err))
	}
}

// RejectClaim abandons a pending claim filed by the owner. A rejected claim
// frees the listing for a fresh claim attempt.
func (srv *claimService) RejectClaim(ctx context.Context, ownerID, claimID uuid.UUID) (*entity.Claim, error) {
	claim, err := srv.claimRepo.FindClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim by id")
	}

	if claim.OwnerID != ownerID {
		return nil, domainerrors.ErrClaimNotFound
	}
	if claim.Status != entity.ClaimStatusPending {
		return nil, domainerrors.ErrClaimNotFound
	}

	claim.Status = entity.ClaimStatusRejected
	claim.UpdatedAt = time.Now()

	if err := srv.claimRepo.UpdateClaim(ctx, claim); err != nil {
		return nil, errors.Wrap(err, "failed to update claim")
	}

	srv.log(ctx).Info("Claim rejected",
		slog.Any("claimID", claimID),
		slog.Any("ownerID", ownerID))

	return claim, nil
}

// ListOwnerClaims returns the claims filed by an owner, newest first.
func (srv *claimService) ListOwnerClaims(ctx context.Context, ownerID uuid.UUID) ([]*entity.Claim, error) {
	claims, err := srv.claimRepo.FindClaimsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find claims by owner")
	}

	return claims, nil
}
