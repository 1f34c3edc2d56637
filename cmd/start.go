package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/soumya721644/docqa-be/config"
	"github.com/soumya721644/docqa-be/handler"
	"github.com/soumya721644/docqa-be/middleware"
	"github.com/soumya721644/docqa-be/service"
	"github.com/soumya721644/docqa-be/types"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the query-retrieval server",
	Long:  `Starts the HTTP server that answers questions about PDF documents`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}

		// Initialize services
		documentService := service.NewDocumentService(types.DocumentServiceConfig{
			MaxChunkSize: cfg.Document.MaxChunkSize,
			OverlapSize:  cfg.Document.OverlapSize,
		})

		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize AI service")
		}

		queryService := service.NewQueryService(documentService, aiService, cfg.AI.TopK)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		queryHandler := handler.NewQueryHandler(queryService)
		healthHandler := handler.NewHealthHandler()

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", healthHandler.HandleHealth)

		// API v1 routes - require the bearer token
		apiV1 := router.Group("/api/v1")
		apiV1.Use(middleware.BearerAuth(cfg.APIBearerToken))
		{
			apiV1.POST("/hackrx/run", queryHandler.HandleRun)
			apiV1.POST("/hackrx/upload", queryHandler.HandleUpload)
		}

		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
