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

	_ "studyhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"studyhub/internal/ai"
	"studyhub/internal/auth"
	"studyhub/internal/cache"
	"studyhub/internal/config"
	"studyhub/internal/db"
	"studyhub/internal/handler"
	"studyhub/internal/repository"
	"studyhub/internal/router"
	"studyhub/internal/service"
)

// @title StudyHub API
// @version 1.0
// @description Student productivity API: class schedule, budget, subjects, instructors, study tasks and sessions, and an AI-assisted question bank.
// @host localhost:8000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	decimal.MarshalJSONWithoutQuotes = true

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables: %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if !cacheClient.Healthy(context.Background()) {
		log.Printf("redis at %s unreachable, continuing without cache and token revocation", cfg.RedisAddr)
	}

	clock := func() time.Time { return time.Now().In(cfg.Location) }

	// Initialize repositories
	repos := repository.New(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	var generator service.Generator
	if cfg.OpenAIKey != "" {
		generator = ai.NewGenerator(ai.NewOpenAICompleter(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL))
	} else {
		log.Println("OPENAI_API_KEY not set, question generation is disabled")
	}

	// Initialize services
	userService := service.NewUserService(repos.Users, cacheClient)
	authService := service.NewAuthService(repos.Users, userService, jwtService, tokenStore)
	classService := service.NewClassService(repos.Classes, clock)
	budgetService := service.NewBudgetService(repos.Budget, clock)
	subjectService := service.NewSubjectService(repos.Subjects)
	instructorService := service.NewInstructorService(repos.Instructors)
	taskService := service.NewStudyTaskService(repos.StudyTasks, clock)
	sessionService := service.NewStudySessionService(repos.StudySessions, clock)
	questionService := service.NewQuestionService(repos.Questions, generator)
	seedService := service.NewSeedService(repos, clock)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, gormDB, cacheClient, authService, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Class:        handler.NewClassHandler(classService),
		Budget:       handler.NewBudgetHandler(budgetService, cfg.Location),
		Subject:      handler.NewSubjectHandler(subjectService),
		Instructor:   handler.NewInstructorHandler(instructorService),
		StudyTask:    handler.NewStudyTaskHandler(taskService, cfg.Location),
		StudySession: handler.NewStudySessionHandler(sessionService, cfg.Location),
		Question:     handler.NewQuestionHandler(questionService),
		Seed:         handler.NewSeedHandler(seedService),
	})

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("server stopped")
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
