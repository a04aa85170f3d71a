// @title Easyway Pro API
// @version 1.0
// @description Student portal API: quizzes, certificates, resumes, docs, resources, roadmaps, tasks and an AI study assistant.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"easyway/internal/adapter"
	"easyway/internal/adapter/llm"
	"easyway/internal/adapter/storage"
	"easyway/internal/cache"
	"easyway/internal/config"
	"easyway/internal/database"
	"easyway/internal/handler"
	"easyway/internal/logger"
	"easyway/internal/middleware"
	"easyway/internal/repository"
	"easyway/internal/service"
	"easyway/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Env, cfg.Logger.Level); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Database
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, "migrations"); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Object storage
	objectStorage, err := storage.NewOSSStorage(cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	appLogger.Info("Object storage initialized", zap.String("bucket", cfg.Storage.Bucket))

	// LLM
	chatModel, err := llm.NewGoogleAIChatModel(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Timeout)
	if err != nil {
		appLogger.Fatal("Failed to initialize chat model", zap.Error(err))
	}
	appLogger.Info("Chat model initialized", zap.String("model", cfg.LLM.Model))

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	quizRepository := repository.NewSQLXQuizRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	resumeRepository := repository.NewSQLXResumeRepository(db)
	docRepository := repository.NewSQLXDocRepository(db)
	resourceRepository := repository.NewSQLXResourceRepository(db)
	roadmapRepository := repository.NewSQLXRoadmapRepository(db)
	taskRepository := repository.NewSQLXTaskRepository(db)
	chatRepository := repository.NewSQLXChatRepository(db)
	contactRepository := repository.NewSQLXContactRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	authService := service.NewAuthService(userRepository, cfg)
	quizService := service.NewQuizService(quizRepository, attemptRepository, userRepository, txManager, cacheAdapter, cfg)
	resumeService := service.NewResumeService(resumeRepository)
	docService := service.NewDocService(docRepository)
	resourceService := service.NewResourceService(resourceRepository, objectStorage)
	roadmapService := service.NewRoadmapService(roadmapRepository)
	taskService := service.NewTaskService(taskRepository)
	chatService := service.NewChatService(chatRepository, chatModel)
	contactService := service.NewContactService(contactRepository)
	adminService := service.NewAdminService(userRepository, quizRepository, attemptRepository, resourceRepository)

	// Handlers
	validator := validation.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator, cfg)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	resumeHandler := handler.NewResumeHandler(resumeService)
	docHandler := handler.NewDocHandler(docService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	roadmapHandler := handler.NewRoadmapHandler(roadmapService)
	taskHandler := handler.NewTaskHandler(taskService)
	chatHandler := handler.NewChatHandler(chatService, validator)
	contactHandler := handler.NewContactHandler(contactService, validator)
	adminHandler := handler.NewAdminHandler(adminService, contactService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    60 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: cfg.Server.CORSOrigins != "*",
		MaxAge:           300,
	}))

	protected := middleware.Protected(authService, cfg.JWT.CookieName)
	adminOnly := middleware.AdminOnly()

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/me", protected, authHandler.Me)
	auth.Get("/profile", protected, authHandler.Me)
	auth.Put("/profile", protected, authHandler.UpdateProfile)

	// Quizzes and certificates
	api.Get("/quiz", quizHandler.ListQuizzes)
	api.Post("/quiz", protected, adminOnly, quizHandler.CreateQuiz)
	api.Post("/quiz/submit", protected, quizHandler.SubmitQuiz)
	api.Get("/quiz/quizSet/:idOrSlug", quizHandler.GetQuiz)
	api.Get("/quiz/user-score", protected, quizHandler.GetUserScore)
	api.Get("/quiz/certificate/:credential", quizHandler.GetCertificate)
	api.Delete("/quiz/:id", protected, adminOnly, quizHandler.DeleteQuiz)

	// Resume
	resumes := api.Group("/resumes", protected)
	resumes.Get("/", resumeHandler.GetResume)
	resumes.Post("/", resumeHandler.SaveResume)
	resumes.Put("/", resumeHandler.SaveResume)
	resumes.Post("/reset", resumeHandler.ResetResume)

	// Docs
	docs := api.Group("/docs")
	docs.Get("/", protected, docHandler.ListDocs)
	docs.Get("/:id", protected, docHandler.GetDoc)
	docs.Post("/", protected, adminOnly, docHandler.CreateDoc)
	docs.Put("/:id", protected, adminOnly, docHandler.UpdateDoc)
	docs.Delete("/:id", protected, adminOnly, docHandler.DeleteDoc)
	docs.Post("/:id/questions", protected, adminOnly, docHandler.AddQuestion)
	docs.Put("/:id/questions/:questionID", protected, adminOnly, docHandler.UpdateQuestion)
	docs.Delete("/:id/questions/:questionID", protected, adminOnly, docHandler.DeleteQuestion)

	// Resources
	resources := api.Group("/resources")
	resources.Get("/", resourceHandler.ListResources)
	resources.Get("/:id", resourceHandler.GetResource)
	resources.Post("/upload", protected, adminOnly, resourceHandler.UploadResource)
	resources.Delete("/:id", protected, adminOnly, resourceHandler.DeleteResource)

	// Roadmaps
	roadmaps := api.Group("/roadmaps")
	roadmaps.Get("/", roadmapHandler.ListRoadmaps)
	roadmaps.Post("/", protected, adminOnly, roadmapHandler.CreateRoadmap)
	roadmaps.Get("/:id", protected, roadmapHandler.GetRoadmap)
	roadmaps.Post("/:id/toggle", protected, roadmapHandler.ToggleStep)

	// Tasks
	tasks := api.Group("/tasks", protected)
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.ListTasks)
	tasks.Put("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// Chat and code analysis
	chat := api.Group("/chat", protected)
	chat.Post("/", chatHandler.SendMessage)
	chat.Get("/history", chatHandler.GetHistory)
	chat.Delete("/history", chatHandler.ClearHistory)
	api.Post("/code/analyze-code", protected, chatHandler.AnalyzeCode)

	// Contact
	api.Post("/contact", contactHandler.SubmitMessage)
	api.Get("/contact", protected, adminOnly, adminHandler.ListContactMessages)

	// Admin
	admin := api.Group("/admin", protected, adminOnly)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.UpdateUserRole)
	admin.Get("/stats", adminHandler.GetStats)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
