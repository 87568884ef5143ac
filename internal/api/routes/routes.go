package routes

import (
	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/api/handlers"
	"event-portal-backend/internal/api/middleware"
	"event-portal-backend/internal/config"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/service"
	"event-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, files *storage.Store, accountStore *accounts.Store) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	participantRepo := repository.NewParticipantRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	postRepo := repository.NewPostRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	topDir := cfg.FilesTopDir()
	participantService := service.NewParticipantService(participantRepo, teamRepo, accountStore, files, topDir, validate)
	teamService := service.NewTeamService(teamRepo, files, topDir, validate)
	postService := service.NewPostService(postRepo, teamRepo, catalogRepo, files, topDir, validate)
	locationService := service.NewLocationService(locationRepo, teamRepo, validate)
	scoringService := service.NewScoringService(teamRepo, postRepo, catalogRepo, participantRepo, accountStore)
	catalogService := service.NewCatalogService(catalogRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	maintenanceService := service.NewMaintenanceService(cfg.BackupDir, cfg.DataDir)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	participantHandler := handlers.NewParticipantHandler(participantService)
	teamHandler := handlers.NewTeamHandler(teamService)
	postHandler := handlers.NewPostHandler(postService)
	locationHandler := handlers.NewLocationHandler(locationService)
	scoringHandler := handlers.NewScoringHandler(scoringService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	fileHandler := handlers.NewFileHandler(files)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// API routes
	v1 := router.Group("/api/v1")
	{
		participants := v1.Group("/participants")
		{
			participants.GET("", participantHandler.ListParticipants)
			participants.GET("/lookup", participantHandler.LookupParticipant)
			participants.GET("/preauthorized", participantHandler.PreauthorizedEmails)
			participants.POST("/sync", participantHandler.SyncParticipants)
			participants.POST("/extra", participantHandler.AddExtraParticipant)
			participants.PUT("/profile", participantHandler.UpdateProfile)
			participants.GET("/:id", participantHandler.GetParticipant)
			participants.GET("/:id/team", teamHandler.GetParticipantTeam)
			participants.GET("/:id/available-actions", scoringHandler.GetAvailableActions)
			participants.GET("/:id/available-teammates", scoringHandler.GetAvailableTeammates)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.SaveTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/visibility", teamHandler.GetVisibility)
			teams.POST("/:id/visibility/toggle", teamHandler.ToggleVisibility)
			teams.GET("/:id/posts", postHandler.ListTeamPosts)
			teams.GET(":id/locations", locationHandler.TeamTrack)
			teams.GET(":id/locations/latest", locationHandler.LatestLocation)
			teams.GET("/:id/overview", scoringHandler.GetTeamOverview)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/:id", postHandler.GetPost)
		}

		v1.POST("/locations", locationHandler.SaveLocation)
		v1.GET("/leaderboard", scoringHandler.GetLeaderboard)

		v1.GET("/challenges", catalogHandler.ListChallenges)
		v1.POST("/challenges/import", catalogHandler.ImportChallenges)
		v1.GET("/checkpoints", catalogHandler.ListCheckpoints)
		v1.POST("/checkpoints/import", catalogHandler.ImportCheckpoints)

		notifications := v1.Group("/notifications")
		{
			notifications.POST("", notificationHandler.Broadcast)
			notifications.GET("", notificationHandler.ListNotifications)
		}

		backups := v1.Group("/backups")
		{
			backups.GET("", maintenanceHandler.ListBackups)
			backups.POST("/:name/restore", maintenanceHandler.RestoreBackup)
		}

		v1.GET("/files/*filepath", fileHandler.GetFile)
	}

	return router
}
