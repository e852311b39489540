// @title DisasterGuard Learning API
// @version 1.0
// @description Backend API for the DisasterGuard kids' disaster-safety and sustainability learning app.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"disasterguard/internal/adapter"
	"disasterguard/internal/adapter/completion"
	"disasterguard/internal/cache"
	"disasterguard/internal/config"
	"disasterguard/internal/database"
	"disasterguard/internal/domain"
	"disasterguard/internal/handler"
	"disasterguard/internal/logger"
	"disasterguard/internal/middleware"
	"disasterguard/internal/repository"
	"disasterguard/internal/service"
	"disasterguard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Leaderboard store: JSON file by default, embedded sqlite when selected.
	var leaderboard domain.LeaderboardRepository
	switch cfg.Leaderboard.Backend {
	case "sqlite":
		db, err := database.NewSQLXSQLiteDB(cfg.Leaderboard.Path)
		if err != nil {
			appLogger.Fatal("Failed to open leaderboard database", zap.Error(err))
		}
		if err := database.RunMigrations(db); err != nil {
			appLogger.Fatal("Failed to migrate leaderboard database", zap.Error(err))
		}
		leaderboard = repository.NewSQLLeaderboardRepository(db)
		appLogger.Info("Leaderboard store initialized", zap.String("backend", "sqlite"), zap.String("path", cfg.Leaderboard.Path))
	case "file":
		leaderboard = repository.NewFileLeaderboardRepository(cfg.Leaderboard.Path)
		appLogger.Info("Leaderboard store initialized", zap.String("backend", "file"), zap.String("path", cfg.Leaderboard.Path))
	default:
		appLogger.Fatal("Unsupported leaderboard backend", zap.String("backend", cfg.Leaderboard.Backend))
	}

	// Chat completion cache is optional; without Redis every ask goes to the
	// completion API.
	var chatCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		chatCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Chat completion cache initialized", zap.String("address", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis not configured; chat completions are uncached")
	}

	completer := completion.NewTogetherCompleter(cfg.Chat)

	sessionStore := repository.NewSessionStore()
	questionBank := repository.NewQuestionBank()
	// Requests are served concurrently, so the shared generator is locked.
	rng := util.NewLockedRand(time.Now().UnixNano())

	quizService := service.NewQuizService(questionBank, leaderboard, rng)
	chatService := service.NewChatService(completer, chatCache, cfg.Chat.CacheTTL)
	simulationService := service.NewSimulationService(rng)
	forumService := service.NewForumService()

	quizHandler := handler.NewQuizHandler(quizService)
	chatHandler := handler.NewChatHandler(chatService)
	simulationHandler := handler.NewSimulationHandler(simulationService)
	forumHandler := handler.NewForumHandler(forumService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.SessionHeader,
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiGroup := app.Group("/api", middleware.WithSession(sessionStore))

	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Get("/categories", quizHandler.GetCategories)
	quizGroup.Post("/start", quizHandler.StartQuiz)
	quizGroup.Get("/current", quizHandler.CurrentQuestion)
	quizGroup.Post("/answer", quizHandler.SubmitAnswer)
	quizGroup.Post("/reset", quizHandler.ResetQuiz)
	quizGroup.Get("/result", quizHandler.QuizResult)

	apiGroup.Get("/leaderboard", quizHandler.GetLeaderboard)
	apiGroup.Post("/leaderboard", quizHandler.SaveScore)

	chatGroup := apiGroup.Group("/chat")
	chatGroup.Post("/", chatHandler.Ask)
	chatGroup.Get("/history", chatHandler.History)
	chatGroup.Post("/clear", chatHandler.Clear)
	chatGroup.Get("/questions", chatHandler.QuickQuestions)

	simGroup := apiGroup.Group("/simulations")
	simGroup.Post("/earthquake", simulationHandler.Earthquake)
	simGroup.Post("/hurricane", simulationHandler.Hurricane)
	simGroup.Post("/tsunami", simulationHandler.Tsunami)

	sceneGroup := apiGroup.Group("/scene")
	sceneGroup.Get("/:scenario", simulationHandler.Scene)
	sceneGroup.Post("/:scenario/move", simulationHandler.SceneMove)
	sceneGroup.Post("/:scenario/reset", simulationHandler.SceneReset)

	forumGroup := apiGroup.Group("/forum")
	forumGroup.Get("/posts", forumHandler.ListPosts)
	forumGroup.Post("/posts", forumHandler.CreatePost)
	forumGroup.Post("/posts/:id/like", forumHandler.LikePost)
	forumGroup.Post("/posts/:id/comments", forumHandler.AddComment)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
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
