package main

import (
	"os"

	"notemark/config"
	"notemark/handler"
	"notemark/metadata"
	"notemark/middleware"
	"notemark/repository"
	"notemark/services"
	"notemark/usecase"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	utils.InitLogger()

	if os.Getenv("GO_ENV") != "test" {
		for _, envVar := range []string{"MONGO_URI", "MONGO_DB", "JWT_SECRET_KEY"} {
			if os.Getenv(envVar) == "" {
				log.Fatal().Str("var", envVar).Msg("required environment variable is not set")
			}
		}
	}

	utils.InitValidator()
	services.InitTokens(config.LoadAuthConfig())
}

func setupRouter(dbName string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	usersRepo := repository.GetUsersRepo(utils.MongoClient, dbName)
	notesRepo := repository.GetNotesRepo(utils.MongoClient, dbName)
	bookmarksRepo := repository.GetBookmarksRepo(utils.MongoClient, dbName)

	userService := &usecase.UserService{UsersRepo: usersRepo}
	noteService := &usecase.NoteService{NotesRepo: notesRepo}
	bookmarkService := &usecase.BookmarkService{
		BookmarksRepo: bookmarksRepo,
		Fetcher:       metadata.NewFetcher(),
	}

	authHandler := handler.NewAuthHandler(userService)
	notesHandler := handler.NewNotesHandler(noteService)
	bookmarksHandler := handler.NewBookmarksHandler(bookmarkService)
	statsHandler := handler.NewStatsHandler(usersRepo, notesRepo, bookmarksRepo)
	healthHandler := handler.NewHealthHandler(utils.MongoClient)

	router.GET("/healthz", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/user/profile", authHandler.Profile)
		protected.GET("/stats", statsHandler.GetUserStats)

		notes := protected.Group("/notes")
		{
			notes.POST("", notesHandler.CreateNote)
			notes.GET("", notesHandler.ListNotes)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PUT("/:id", notesHandler.UpdateNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}

		bookmarks := protected.Group("/bookmarks")
		{
			bookmarks.POST("", bookmarksHandler.CreateBookmark)
			bookmarks.GET("", bookmarksHandler.ListBookmarks)
			bookmarks.GET("/:id", bookmarksHandler.GetBookmark)
			bookmarks.PUT("/:id", bookmarksHandler.UpdateBookmark)
			bookmarks.DELETE("/:id", bookmarksHandler.DeleteBookmark)
		}
	}

	return router
}

func main() {
	serverConfig := config.LoadServerConfig()
	gin.SetMode(serverConfig.GinMode)

	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(utils.MongoOptions{
		URI:             dbConfig.URI,
		MaxPoolSize:     dbConfig.MaxPoolSize,
		MinPoolSize:     dbConfig.MinPoolSize,
		MaxConnIdleTime: dbConfig.MaxConnIdleTime,
		RetryWrites:     dbConfig.RetryWrites,
	})

	if err := repository.SetupIndexes(utils.MongoClient.Database(dbConfig.DatabaseName)); err != nil {
		log.Fatal().Err(err).Msg("failed to set up indexes")
	}

	router := setupRouter(dbConfig.DatabaseName)

	addr := ":" + serverConfig.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
