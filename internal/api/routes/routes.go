package routes

import (
	"hackathon-dashboard-backend/internal/api/handlers"
	"hackathon-dashboard-backend/internal/api/middleware"
	"hackathon-dashboard-backend/internal/auth"
	"hackathon-dashboard-backend/internal/config"
	"hackathon-dashboard-backend/internal/repository"
	"hackathon-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Read-side repositories; mutating services open their own transactions
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	eventRepo := repository.NewEventRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	bonusRepo := repository.NewBonusRepository(db)

	// Services
	scoringService := service.NewScoringService(teamRepo, memberRepo, coachRepo, eventRepo, attendanceRepo, bonusRepo)
	validationService := service.NewValidationService(teamRepo, memberRepo, coachRepo, eventRepo, attendanceRepo, bonusRepo)
	rosterService := service.NewRosterService(db, validate)
	eventService := service.NewEventService(db, validate)
	reconcileService := service.NewReconciliationService(db, validate)
	bonusService := service.NewBonusService(db, validate)
	importService := service.NewImportService(db, validate)

	// Auth
	authService := auth.NewService(cfg.AdminJWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	scoresHandler := handlers.NewScoresHandler(scoringService)
	validateHandler := handlers.NewValidateHandler(validationService)
	teamHandler := handlers.NewTeamHandler(rosterService)
	eventHandler := handlers.NewEventHandler(eventService)
	reconcileHandler := handlers.NewReconcileHandler(reconcileService)
	bonusHandler := handlers.NewBonusHandler(bonusService)
	importHandler := handlers.NewImportHandler(importService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		// Query surface, consumed by the dashboard UI
		v1.GET("/scores/teams", scoresHandler.TeamScores)
		v1.GET("/scores/members", scoresHandler.MemberScores)
		v1.GET("/scores/coaches", scoresHandler.CoachScores)
		v1.GET("/validate", validateHandler.Validate)
		v1.GET("/teams", teamHandler.ListTeams)
		v1.GET("/teams/:id", teamHandler.GetTeam)
		v1.GET("/events", eventHandler.ListEvents)
		v1.GET("/events/:id", eventHandler.GetEvent)

		// Mutating surface, admin token required
		admin := v1.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/validate/snapshot", validateHandler.ValidateSnapshot)

			admin.POST("/teams", teamHandler.CreateTeam)
			admin.POST("/teams/:id/members", teamHandler.AddMember)
			admin.POST("/teams/:id/rename", teamHandler.RenameTeam)
			admin.POST("/teams/merge", teamHandler.MergeTeams)
			admin.DELETE("/teams/:id", teamHandler.DeactivateTeam)
			admin.DELETE("/members/:id", teamHandler.DeactivateMember)

			admin.POST("/events", eventHandler.CreateEvent)
			admin.DELETE("/events/:id", eventHandler.DeactivateEvent)

			admin.POST("/reconcile", reconcileHandler.Reconcile)
			admin.POST("/overrides", reconcileHandler.ApplyOverride)
			admin.DELETE("/overrides", reconcileHandler.ClearOverride)

			admin.POST("/bonuses", bonusHandler.Award)
			admin.DELETE("/bonuses/:id", bonusHandler.Revoke)

			admin.POST("/import/teams", importHandler.ImportTeams)
			admin.POST("/import/members", importHandler.ImportMembers)
			admin.POST("/import/events", importHandler.ImportEvents)
			admin.POST("/import/attendance", importHandler.ImportAttendance)
			admin.POST("/import/overrides", importHandler.ImportOverrides)
		}
	}

	return router
}
