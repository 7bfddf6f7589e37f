package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/carmarket-backend/docs"
	"github.com/rafabene/carmarket-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/carmarket-backend/internal/handlers/http"
	"github.com/rafabene/carmarket-backend/internal/handlers/middleware"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/config"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/i18n"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/logging"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/carmarket-backend/internal/infrastructure/storage/s3"
	"github.com/rafabene/carmarket-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting carmarket backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar storage de imagens
	fileStorage, err := s3.NewStorage(&cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		log.Fatal(err)
	}

	// Validações custom do binding
	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	carRepo := postgres.NewCarRepository(db)
	imageRepo := postgres.NewImageRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, logger, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	userService := services.NewUserService(userRepo, logger)
	carService := services.NewCarService(carRepo, imageRepo, userRepo, uow, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	carHandler := httphandlers.NewCarHandler(carService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	uploadMiddleware := middleware.NewUploadMiddleware(
		fileStorage,
		cfg.Upload.MaxFiles,
		cfg.Upload.MaxFileSize,
		logger,
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
		}

		// Cars
		cars := v1.Group("/cars")
		{
			cars.POST("",
				authMiddleware.RequireAuth(),
				uploadMiddleware.Array("images"),
				carHandler.AddCarListing,
			)
			cars.GET("/:carId", carHandler.GetCarDetails)
			cars.GET("", carHandler.GetCars)
		}

		// Users
		users := v1.Group("/users")
		{
			users.GET("/me", authMiddleware.RequireAuth(), userHandler.GetProfile)
			users.GET("/:id", userHandler.GetUser)
			users.GET("", userHandler.ListUsers)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
