package impl

import (
	"context"
	"log/slog"

	"detailers/config"
	"detailers/internal/airports"
	deliverycontext "detailers/internal/delivery/context"
	"detailers/internal/domain/entity"
	domainerrors "detailers/internal/domain/errors"
	"detailers/internal/domain/repository"
	"detailers/internal/usecase"
	"detailers/internal/wizard"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wizardService implements the WizardUsecase interface.
type wizardService struct {
	companyRepo    repository.CompanyRepository
	candidateLimit int
	logger         *slog.Logger
}

// WizardServiceParams holds dependencies for WizardService, injected by Fx.
type WizardServiceParams struct {
	fx.In

	CompanyRepo repository.CompanyRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewWizardService is the constructor for wizardService.
func NewWizardService(params WizardServiceParams) usecase.WizardUsecase {
	candidateLimit := 0
	if params.Config != nil && params.Config.Search != nil {
		candidateLimit = params.Config.Search.CandidateLimit
	}

	return &wizardService{
		companyRepo:    params.CompanyRepo,
		candidateLimit: candidateLimit,
		logger:         params.Logger,
	}
}

func (srv *wizardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MatchDetailers scores directory listings against the wizard answers and
// returns the shortlist in descending score order.
func (srv *wizardService) MatchDetailers(ctx context.Context, input *usecase.WizardInput) (*usecase.WizardOutput, error) {
	var location *entity.GeoPoint
	if input.Latitude != nil && input.Longitude != nil {
		point, err := airports.ResolveUserLocation(*input.Latitude, *input.Longitude)
		if err != nil {
			return nil, domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
		}
		location = &point
	}

	candidates, err := srv.companyRepo.ListCompanies(ctx, repository.CompanyFilter{
		Limit: srv.candidateLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wizard candidates")
	}

	matches := wizard.Rank(candidates, wizard.Answers{
		ServicesWanted: input.ServicesWanted,
		Location:       location,
		CutoffMiles:    input.CutoffMiles,
		Limit:          input.Limit,
	})

	srv.log(ctx).Debug("Wizard matched",
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)))

	return &usecase.WizardOutput{Matches: matches}, nil
}
