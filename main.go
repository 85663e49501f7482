package main

import (
	"log"
	"strings"
	"time"

	"quizmaster-service/internal/config"
	"quizmaster-service/internal/db"
	"quizmaster-service/internal/event"
	"quizmaster-service/internal/handlers"
	"quizmaster-service/internal/middleware"
	"quizmaster-service/internal/repository"
	"quizmaster-service/internal/service"
	"quizmaster-service/internal/tutor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	questionRepo := repository.NewQuestionRepository(database)
	userRepo := repository.NewUserRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	settingsRepo := repository.NewSettingsRepository(database)

	questionService := service.NewQuestionService(questionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	progressService := service.NewProgressService(attemptRepo, progressRepo, userRepo)
	sessionService := service.NewSessionService(sessionRepo, questionService, settingsRepo, progressService)
	userService := service.NewUserService(userRepo, attemptRepo, progressRepo)

	resolver := tutor.NewResolver([]tutor.Provider{
		tutor.NewOpenAIProvider(cfg.OpenAIAPIKey),
		tutor.NewAnthropicProvider(cfg.AnthropicAPIKey),
		tutor.NewTogetherProvider(cfg.TogetherAPIKey),
	}, 30*time.Second)

	questionHandler := handlers.NewQuestionHandler(questionService, publisher)
	sessionHandler := handlers.NewSessionHandler(sessionService, settingsService, publisher)
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(resolver, userService, publisher)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": cfg.ServiceName, "version": cfg.ServiceVersion})
	})

	// Public routes: browse the catalog and the leaderboard without auth.
	publicQuestion := r.Group("/public/quiz/question")
	{
		publicQuestion.GET("/", questionHandler.ListQuestions)
		publicQuestion.GET("/:id", questionHandler.GetQuestion)
	}
	r.GET("/public/quiz/categories", questionHandler.ListCategories)

	publicUser := r.Group("/public/quiz/user")
	{
		publicUser.GET("/leaderboard", userHandler.Leaderboard)
	}

	r.GET("/public/quiz/settings", settingsHandler.GetSettings)

	// Protected routes: everything that acts on behalf of a user.
	protected := r.Group("/protected/quiz")
	protected.Use(middleware.RequireUser(cfg.JWTSecret))
	{
		protected.POST("/user/register", userHandler.Register)
		protected.GET("/user/me", userHandler.Me)
		protected.PUT("/user/me", userHandler.UpdateMe)
		protected.GET("/user/me/progress", userHandler.MyProgress)
		protected.GET("/user/me/attempts", userHandler.MyAttempts)

		protected.POST("/session", sessionHandler.StartSession)
		protected.GET("/session/:id", sessionHandler.GetSession)
		protected.POST("/session/:id/answer", sessionHandler.SubmitAnswer)
		protected.POST("/session/:id/abandon", sessionHandler.AbandonSession)

		protected.POST("/chat", chatHandler.Chat)
	}

	// Admin routes: catalog and settings management.
	admin := r.Group("/protected/quiz/admin")
	admin.Use(middleware.RequireUser(cfg.JWTSecret), middleware.RequireAdmin(userRepo))
	{
		admin.POST("/question", questionHandler.CreateQuestion)
		admin.PUT("/question/:id", questionHandler.UpdateQuestion)
		admin.DELETE("/question/:id", questionHandler.DeleteQuestion)
		admin.POST("/questions/import", questionHandler.BulkImport)
		admin.GET("/questions/export", questionHandler.ExportQuestions)
		admin.POST("/questions/seed", questionHandler.SeedCatalog)
		admin.PUT("/settings", settingsHandler.UpdateSettings)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
