package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"quizmentor/internal/analysis"
	"quizmentor/internal/config"
	"quizmentor/internal/db"
	"quizmentor/internal/event"
	"quizmentor/internal/handlers"
	"quizmentor/internal/llm"
	"quizmentor/internal/repository"
	"quizmentor/internal/service"
	"quizmentor/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	gin.SetMode(config.AppConfig.GinMode)

	db.InitMongo(config.AppConfig.MongoURI)
	defer db.DisconnectMongo()

	// RabbitMQ event publisher. Optional: a nil publisher is a no-op.
	var publisher *event.EventPublisher
	if config.AppConfig.RabbitMQURI != "" && config.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(config.AppConfig.RabbitMQURI, config.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	generator, err := llm.NewProvider(context.Background(), config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini provider: %v", err)
	}
	log.Printf("Quiz generation using Gemini model %s", generator.ModelID())

	database := db.Client.Database(config.AppConfig.MongoDatabase)

	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	progressRepo := repository.NewProgressRepository(database)

	authService := service.NewAuthService(userRepo)
	quizService := service.NewQuizService(quizRepo, generator)
	progressService := service.NewProgressService(progressRepo, quizRepo, userRepo)
	classifier := analysis.NewClassifier(config.AppConfig.MLServiceURL)
	analysisService := service.NewAnalysisService(progressRepo, userRepo, classifier)

	authHandler := handlers.NewAuthHandler(authService)
	courseHandler := handlers.NewCourseHandler()
	quizHandler := handlers.NewQuizHandler(quizService, progressService)
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService)

	r := setupRouter(publisher, authHandler, courseHandler, quizHandler, analyzeHandler)

	log.Printf("Starting quizmentor on port %s", config.AppConfig.Port)
	if err := r.Run(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func setupRouter(
	publisher *event.EventPublisher,
	authHandler *handlers.AuthHandler,
	courseHandler *handlers.CourseHandler,
	quizHandler *handlers.QuizHandler,
	analyzeHandler *handlers.AnalyzeHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish(event.UserRegistered, nil)
			}
		})
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authMiddleware(), authHandler.Me)
	}

	courses := r.Group("/courses")
	courses.Use(authMiddleware())
	{
		courses.GET("", courseHandler.ListCourses)
		courses.GET("/:topic", courseHandler.GetCourseByTopic)
	}

	quiz := r.Group("/quiz")
	quiz.Use(authMiddleware())
	{
		quiz.GET("/generate", func(c *gin.Context) {
			quizHandler.GenerateQuiz(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.QuizGenerated, gin.H{
					"topic":  c.Query("topic"),
					"userId": c.GetString(handlers.CtxUserID),
				})
			}
		})
		quiz.POST("/submit", func(c *gin.Context) {
			quizHandler.SubmitQuiz(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.QuizSubmitted, gin.H{
					"userId": c.GetString(handlers.CtxUserID),
				})
			}
		})
		quiz.GET("/history/:userId", quizHandler.GetHistory)
		quiz.GET("/details/:quizId", quizHandler.GetDetails)
	}

	analyze := r.Group("/analyze")
	analyze.Use(authMiddleware())
	{
		analyze.GET("/:userId", func(c *gin.Context) {
			analyzeHandler.AnalyzeProgress(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish(event.ProgressAnalyzed, gin.H{
					"userId": c.Param("userId"),
				})
			}
		})
	}

	return r
}

// authMiddleware validates the Bearer token and exposes the caller's
// identity and role to downstream handlers.
func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ClaimsFromRequest(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Please log in to access this resource",
			})
			c.Abort()
			return
		}

		c.Set(handlers.CtxUserID, claims.UserID)
		c.Set(handlers.CtxRole, claims.Role)
		c.Next()
	}
}
