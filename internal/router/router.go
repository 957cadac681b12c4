package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/workforce-management-api/internal/audit"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/handlers"
	"github.com/yukikurage/workforce-management-api/internal/metrics"
	"github.com/yukikurage/workforce-management-api/internal/middleware"
	"github.com/yukikurage/workforce-management-api/internal/repository"
	"github.com/yukikurage/workforce-management-api/internal/services"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the router wires into handlers.
type Dependencies struct {
	DB           *gorm.DB
	Tokens       *auth.TokenIssuer
	Auditor      *audit.Auditor
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
	ClientOrigin string
	Environment  string
}

// New builds the HTTP handler tree.
func New(deps Dependencies) *gin.Engine {
	orgRepo := repository.NewOrganisationRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	teamRepo := repository.NewTeamRepository(deps.DB)
	membershipRepo := repository.NewMembershipRepository(deps.DB)
	logRepo := repository.NewLogRepository(deps.DB)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(orgRepo, userRepo, deps.Tokens), deps.Auditor)
	employeeHandler := handlers.NewEmployeeHandler(services.NewEmployeeService(employeeRepo))
	teamHandler := handlers.NewTeamHandler(services.NewTeamService(teamRepo, employeeRepo, membershipRepo))
	logHandler := handlers.NewLogHandler(services.NewLogService(logRepo))
	statsHandler := handlers.NewStatsHandler(services.NewStatsService(employeeRepo, teamRepo, userRepo))
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Environment)

	r := gin.New()
	r.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestLogger(deps.Logger, deps.Metrics),
		middleware.CORS(deps.ClientOrigin),
	)

	r.GET("/", healthHandler.Banner)
	r.GET("/health", healthHandler.Health)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Auth routes (public); they write their own audit entries
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.Audit(deps.Auditor), middleware.RequireAuth(deps.Tokens, userRepo))
		{
			employees := protected.Group("/employees")
			{
				employees.GET("", employeeHandler.ListEmployees)
				employees.POST("", employeeHandler.CreateEmployee)
				employees.GET("/:id", employeeHandler.GetEmployee)
				employees.PUT("/:id", employeeHandler.UpdateEmployee)
				employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			}

			teams := protected.Group("/teams")
			{
				teams.GET("", teamHandler.ListTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeam)
				teams.PUT("/:id", teamHandler.UpdateTeam)
				teams.DELETE("/:id", teamHandler.DeleteTeam)
				teams.POST("/:id/assign", teamHandler.AssignEmployees)
				teams.DELETE("/:id/unassign", teamHandler.UnassignEmployee)
			}

			protected.GET("/logs", middleware.RequireAdmin(), logHandler.ListLogs)
			protected.GET("/stats/summary", statsHandler.Summary)
		}
	}

	return r
}
