package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"studyhub/internal/auth"
	"studyhub/internal/cache"
	"studyhub/internal/config"
	"studyhub/internal/errors"
	"studyhub/internal/handler"
	"studyhub/internal/httpmiddleware"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth         *handler.AuthHandler
	Class        *handler.ClassHandler
	Budget       *handler.BudgetHandler
	Subject      *handler.SubjectHandler
	Instructor   *handler.InstructorHandler
	StudyTask    *handler.StudyTaskHandler
	StudySession *handler.StudySessionHandler
	Question     *handler.QuestionHandler
	Seed         *handler.SeedHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	db *gorm.DB,
	redis *cache.Client,
	revocation httpmiddleware.RevocationChecker,
	h Handlers,
) {
	e.HTTPErrorHandler = newHTTPErrorHandler()
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(httpmiddleware.Metrics())
	e.Use(httpmiddleware.RateLimit(cfg.RateLimitPerMin))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", healthz(db, redis))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Secured routes (require JWT authentication). The middleware is attached
	// per group so unmatched /api paths still fall through to 404.
	secured := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Message: "Authentication required",
					Code:    "UNAUTHORIZED",
				}).SetInternal(err)
			},
		}),
		httpmiddleware.RequireAccessToken(revocation),
	}

	api.GET("/auth/verify", h.Auth.Verify, secured...)
	api.POST("/auth/logout", h.Auth.Logout, secured...)

	class := api.Group("/class", secured...)
	class.GET("/all", h.Class.List)
	class.GET("/next", h.Class.Next)
	class.GET("/conflict", h.Class.Conflict)
	class.POST("/add", h.Class.Create)
	class.PUT("/update/:id", h.Class.Update)
	class.DELETE("/delete/:id", h.Class.Delete)

	budget := api.Group("/budget", secured...)
	budget.GET("/all", h.Budget.List)
	budget.GET("/summary", h.Budget.Summary)
	budget.POST("/add", h.Budget.Create)
	budget.PUT("/update/:id", h.Budget.Update)
	budget.DELETE("/delete/:id", h.Budget.Delete)

	subject := api.Group("/subject", secured...)
	subject.GET("/all", h.Subject.List)
	subject.POST("/add", h.Subject.Create)
	subject.PUT("/update/:id", h.Subject.Update)
	subject.DELETE("/delete/:id", h.Subject.Delete)

	instructor := api.Group("/instructor", secured...)
	instructor.GET("/all", h.Instructor.List)
	instructor.POST("/add", h.Instructor.Create)
	instructor.PUT("/update/:id", h.Instructor.Update)
	instructor.DELETE("/delete/:id", h.Instructor.Delete)

	task := api.Group("/study-task", secured...)
	task.GET("/all", h.StudyTask.List)
	task.GET("/stats", h.StudyTask.Stats)
	task.POST("/add", h.StudyTask.Create)
	task.PUT("/update/:id", h.StudyTask.Update)
	task.PATCH("/toggle/:id", h.StudyTask.Toggle)
	task.DELETE("/delete/:id", h.StudyTask.Delete)

	session := api.Group("/study-session", secured...)
	session.GET("/all", h.StudySession.List)
	session.GET("/stats", h.StudySession.Stats)
	session.GET("/chart", h.StudySession.Chart)
	session.POST("/add", h.StudySession.Create)
	session.PUT("/update/:id", h.StudySession.Update)
	session.DELETE("/delete/:id", h.StudySession.Delete)

	question := api.Group("/question", secured...)
	question.GET("/all", h.Question.List)
	question.POST("/create-custom", h.Question.Create)
	question.POST("/add", h.Question.Create)
	question.PUT("/update/:id", h.Question.Update)
	question.DELETE("/delete/:id", h.Question.Delete)
	question.POST("/generate-by-ai", h.Question.Generate)

	api.POST("/seed/demo", h.Seed.SeedDemo, secured...)
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
	Redis  bool   `json:"redis"`
}

// healthz fails only when the database is unreachable; redis is optional.
func healthz(db *gorm.DB, redis *cache.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		dbHealthy := false
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				dbHealthy = sqlDB.PingContext(ctx) == nil
			}
		}
		resp := HealthResponse{Status: "ok", DB: dbHealthy, Redis: redis.Healthy(ctx)}
		status := http.StatusOK
		if !dbHealthy {
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, resp)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
