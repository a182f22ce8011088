package handler

import (
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type testApp struct {
	router     *gin.Engine
	users      *memUserStore
	mailer     *memMailer
	categories *memCategoryStore
	notes      *memNoteStore
	sessions   *memSessionRepo
}

// newTestApp wires the full route table against in-memory stores, mirroring
// the production router.
func newTestApp() *testApp {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	app := &testApp{
		users:      newMemUserStore(),
		mailer:     &memMailer{},
		categories: newMemCategoryStore(),
		notes:      newMemNoteStore(),
		sessions:   newMemSessionRepo(),
	}

	cfg := testConfig()

	accountsService := &usecase.AccountsService{Users: app.users, Mailer: app.mailer}
	categoriesService := &usecase.CategoriesService{Categories: app.categories, Notes: app.notes}
	notesService := &usecase.NotesService{Notes: app.notes, Categories: app.categories}

	router := gin.New()
	router.Use(middleware.SessionMiddleware(app.sessions, cfg))

	public := router.Group("/api")
	{
		public.POST("/register", func(c *gin.Context) {
			RegistrationHandler(c, accountsService, cfg.BaseURL)
		})
		public.GET("/confirm/:token", func(c *gin.Context) {
			ConfirmEmailHandler(c, accountsService)
		})
		public.POST("/login", func(c *gin.Context) {
			LoginHandler(c, accountsService, app.sessions, cfg)
		})
		public.POST("/logout", func(c *gin.Context) {
			LogoutHandler(c, app.sessions, cfg)
		})
		public.GET("/user", func(c *gin.Context) {
			CurrentUserHandler(c, accountsService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.RequireAuth())
	{
		categories := protected.Group("/categories")
		{
			categories.GET("", func(c *gin.Context) { ListCategoriesHandler(c, categoriesService) })
			categories.POST("", func(c *gin.Context) { CreateCategoryHandler(c, categoriesService) })
			categories.GET("/:id", func(c *gin.Context) { GetCategoryHandler(c, categoriesService) })
			categories.PUT("/:id", func(c *gin.Context) { UpdateCategoryHandler(c, categoriesService) })
			categories.DELETE("/:id", func(c *gin.Context) { DeleteCategoryHandler(c, categoriesService) })
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("", func(c *gin.Context) { ActiveSessionsHandler(c, app.sessions) })
			sessions.POST("/logout-all", func(c *gin.Context) { LogoutAllHandler(c, app.sessions, cfg) })
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/statuses", func(c *gin.Context) { NoteStatusesHandler(c, notesService) })
			notes.GET("", func(c *gin.Context) { ListNotesHandler(c, notesService, categoriesService) })
			notes.POST("", func(c *gin.Context) { CreateNoteHandler(c, notesService, categoriesService) })
			notes.GET("/:id", func(c *gin.Context) { GetNoteHandler(c, notesService, categoriesService) })
			notes.PUT("/:id", func(c *gin.Context) { UpdateNoteHandler(c, notesService, categoriesService) })
			notes.DELETE("/:id", func(c *gin.Context) { DeleteNoteHandler(c, notesService) })
		}
	}

	app.router = router
	return app
}
