package main

import (
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"SESSIONS_COLLECTION",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitMongoClient()
}

func setupRouter(cfg *config.ServerConfig) *gin.Engine {
	router := gin.Default()

	// Repositories
	userRepo := repository.GetUserRepo(utils.MongoClient)
	categoryRepo := repository.GetCategoryRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	// Services
	accountsService := &usecase.AccountsService{
		Users:  userRepo,
		Mailer: services.NewFileMailer(cfg.EmailDir),
	}
	categoriesService := &usecase.CategoriesService{
		Categories: categoryRepo,
		Notes:      notesRepo,
	}
	notesService := &usecase.NotesService{
		Notes:      notesRepo,
		Categories: categoryRepo,
	}

	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.BodySizeLimit(cfg.MaxBodyBytes))
	router.Use(middleware.SessionMiddleware(sessionRepo, cfg))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		handler.HealthHandler(c, utils.MongoClient)
	})

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/register", func(c *gin.Context) {
			handler.RegistrationHandler(c, accountsService, cfg.BaseURL)
		})
		public.GET("/confirm/:token", func(c *gin.Context) {
			handler.ConfirmEmailHandler(c, accountsService)
		})
		public.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, accountsService, sessionRepo, cfg)
		})
		public.POST("/logout", func(c *gin.Context) {
			handler.LogoutHandler(c, sessionRepo, cfg)
		})
		public.GET("/user", func(c *gin.Context) {
			handler.CurrentUserHandler(c, accountsService)
		})
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth())
	{
		categories := protected.Group("/categories")
		{
			categories.GET("", func(c *gin.Context) {
				handler.ListCategoriesHandler(c, categoriesService)
			})
			categories.POST("", func(c *gin.Context) {
				handler.CreateCategoryHandler(c, categoriesService)
			})
			categories.GET("/:id", func(c *gin.Context) {
				handler.GetCategoryHandler(c, categoriesService)
			})
			categories.PUT("/:id", func(c *gin.Context) {
				handler.UpdateCategoryHandler(c, categoriesService)
			})
			categories.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteCategoryHandler(c, categoriesService)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("", func(c *gin.Context) {
				handler.ActiveSessionsHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllHandler(c, sessionRepo, cfg)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/statuses", middleware.CacheControlMiddleware("3600"), func(c *gin.Context) {
				handler.NoteStatusesHandler(c, notesService)
			})
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService, categoriesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService, categoriesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService, categoriesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService, categoriesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
		}
	}

	return router
}

func main() {
	cfg := config.LoadServerConfig()
	defer utils.CloseMongoClient()

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	if cfg.RedisURL != "" {
		cache, err := services.NewSessionCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: session cache disabled: %v", err)
		} else {
			services.GlobalSessionCache = cache
		}
	}

	utils.StartSystemMetrics(15 * time.Second)

	// Feed the active-session gauge from the store.
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	go func() {
		for {
			if count, err := sessionRepo.CountActiveSessions(); err == nil {
				utils.UpdateActiveSessions(float64(count))
			}
			time.Sleep(time.Minute)
		}
	}()

	router := setupRouter(&cfg)

	log.Printf("Listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
