// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"detailers/internal/delivery/http/middleware"
	"detailers/internal/delivery/http/router/handler"
	"detailers/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler    *handler.SearchHandler
	CompanyHandler   *handler.CompanyHandler
	LeadHandler      *handler.LeadHandler
	WizardHandler    *handler.WizardHandler
	TileHandler      *handler.TileHandler
	AccountHandler   *handler.AccountHandler
	ClaimHandler     *handler.ClaimHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public directory routes
	e.GET("/search", r.params.SearchHandler.Search)
	e.GET("/nearby", r.params.SearchHandler.Nearby)
	e.GET("/airports", r.params.SearchHandler.ListAirports)
	e.GET("/airports/:code/companies", r.params.SearchHandler.SearchByAirport)
	e.GET("/companies", r.params.CompanyHandler.ListCompanies)
	e.GET("/companies/:slug", r.params.CompanyHandler.GetCompanyBySlug)
	e.GET("/companies/id/:id", r.params.CompanyHandler.GetCompanyByID)
	e.POST("/leads", r.params.LeadHandler.SubmitLead)
	e.POST("/wizard/match", r.params.WizardHandler.Match)

	// Basemap tiles for the near-me map
	e.GET("/tiles/*", r.params.TileHandler.GetTile)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AccountHandler.Register)
		authGroup.POST("/login", r.params.AccountHandler.Login)
		authGroup.POST("/refresh", r.params.AccountHandler.Refresh)
		authGroup.POST("/logout", r.params.AccountHandler.Logout, r.params.AuthMiddleware.Authenticate)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.params.AccountHandler.GetProfile)
		accountGroup.POST("/devices", r.params.AccountHandler.RegisterDevice)
		accountGroup.DELETE("/devices", r.params.AccountHandler.RemoveDevice)
	}

	// Claim routes: any authenticated account may file a claim
	claimGroup := e.Group("/claims")
	claimGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		claimGroup.POST("", r.params.ClaimHandler.StartClaim)
		claimGroup.GET("", r.params.ClaimHandler.ListClaims)
		claimGroup.GET("/:id/invite", r.params.ClaimHandler.GetClaimInvite)
		claimGroup.POST("/:id/verify", r.params.ClaimHandler.VerifyClaim)
		claimGroup.POST("/:id/reject", r.params.ClaimHandler.RejectClaim)
	}

	// Dashboard routes require authentication and the "owner" role
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.params.AuthMiddleware.Authenticate)
	dashboardGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleOwner))
	{
		dashboardGroup.PATCH("/companies/:id", r.params.DashboardHandler.UpdateCompanyProfile)

		dashboardGroup.GET("/companies/:id/locations", r.params.DashboardHandler.GetCompanyLocations)
		dashboardGroup.POST("/companies/:id/locations", r.params.DashboardHandler.AddCompanyLocation)
		dashboardGroup.PATCH("/companies/:id/locations/:locationID", r.params.DashboardHandler.UpdateCompanyLocation)
		dashboardGroup.DELETE("/companies/:id/locations/:locationID", r.params.DashboardHandler.DeleteCompanyLocation)

		dashboardGroup.POST("/companies/:id/media", r.params.DashboardHandler.UploadMedia)
		dashboardGroup.GET("/companies/:id/media", r.params.DashboardHandler.ListMedia)
		dashboardGroup.DELETE("/companies/:id/media/:mediaID", r.params.DashboardHandler.DeleteMedia)

		dashboardGroup.GET("/companies/:id/leads", r.params.LeadHandler.ListCompanyLeads)
		dashboardGroup.PATCH("/leads/:id/status", r.params.LeadHandler.UpdateLeadStatus)
	}
}
