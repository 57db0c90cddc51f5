package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hustlehub/hustlehub-api/docs"
	"github.com/hustlehub/hustlehub-api/internal/api/handler"
	"github.com/hustlehub/hustlehub-api/internal/api/middleware"
	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

const defaultBodyLimit = "10M"

// Dependencies is everything the HTTP layer needs. Readiness lists the
// dependencies probed by /health/ready.
type Dependencies struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	Cookie      handler.CookieConfig
	BodyLimit   string

	Auth          ports.AuthService
	Employers     ports.EmployerService
	Jobs          ports.JobService
	Applications  ports.ApplicationService
	Profiles      ports.ProfileService
	Admin         ports.AdminService
	Resources     ports.ResourceService
	Notifications ports.NotificationService

	Readiness map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	bodyLimit := deps.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return xid.New().String() },
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))
	e.Use(middleware.Metrics())

	// --- Middleware factories ---
	requireAuth := middleware.Auth(deps.Auth, deps.Cookie.Name)
	optionalAuth := middleware.OptionalAuth(deps.Auth, deps.Cookie.Name)
	applicantOnly := middleware.RBAC(domain.RoleApplicant)
	employerOnly := middleware.RBAC(domain.RoleEmployer)
	employerOrAdmin := middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookie)
	employerHandler := handler.NewEmployerHandler(deps.Employers)
	jobHandler := handler.NewJobHandler(deps.Jobs, deps.Applications)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	resourceHandler := handler.NewResourceHandler(deps.Resources)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Readiness).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, optionalAuth)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.GET("/users", adminHandler.AllUsers, requireAuth, adminOnly)

	// --- Employer profiles ---
	employers := e.Group("/employers")
	employers.POST("", employerHandler.Create, requireAuth, employerOnly)
	employers.GET("/me", employerHandler.Mine, requireAuth, employerOnly)
	employers.PUT("/me", employerHandler.UpdateMine, requireAuth, employerOnly)
	employers.GET("/:id", employerHandler.Get)

	// --- Jobs and applications ---
	jobs := e.Group("/jobs")
	jobs.GET("", jobHandler.List, optionalAuth)
	jobs.POST("", jobHandler.Create, requireAuth, employerOrAdmin)
	jobs.GET("/:id", jobHandler.Get, optionalAuth)
	jobs.PUT("/:id/toggle-active", jobHandler.ToggleActive, requireAuth, employerOrAdmin)
	jobs.POST("/:id/apply", jobHandler.Apply, requireAuth, applicantOnly)
	jobs.GET("/applications/me", jobHandler.MyApplications, requireAuth, applicantOnly)
	jobs.DELETE("/applications/withdraw/:job_id", jobHandler.Withdraw, requireAuth, applicantOnly)
	jobs.PUT("/applications/:id/status", jobHandler.UpdateStatus, requireAuth, employerOrAdmin)
	jobs.GET("/employer/jobs", jobHandler.EmployerJobs, requireAuth, employerOrAdmin)
	jobs.GET("/employer/applications", jobHandler.EmployerApplications, requireAuth, employerOrAdmin)
	jobs.GET("/employer/applications/:job_id", jobHandler.EmployerApplications, requireAuth, employerOrAdmin)

	// --- Profile ---
	profile := e.Group("/profile", requireAuth)
	profile.GET("/me", profileHandler.Get)
	profile.PUT("/me", profileHandler.Update)
	profile.PUT("/change-password", profileHandler.ChangePassword)
	profile.POST("/resume", profileHandler.UploadResume, applicantOnly)
	profile.DELETE("/resume", profileHandler.DeleteResume, applicantOnly)
	profile.GET("/resume/:user_id", profileHandler.DownloadResume)

	// --- Admin console ---
	admin := e.Group("/admin", requireAuth, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/jobs", adminHandler.ListJobs)
	admin.DELETE("/jobs/:id", adminHandler.DeleteJob)
	admin.POST("/verify-password", adminHandler.VerifyPassword)
	admin.GET("/dashboard", adminHandler.Dashboard)

	// --- Financial literacy ---
	resources := e.Group("/financial-literacy")
	resources.GET("/:type", resourceHandler.ListByType, optionalAuth)
	resources.POST("", resourceHandler.Create, requireAuth, adminOnly)
	resources.PUT("/:id", resourceHandler.Update, requireAuth, adminOnly)
	resources.DELETE("/:id", resourceHandler.Delete, requireAuth, adminOnly)
	resources.POST("/:id/like", resourceHandler.Like, requireAuth)
	resources.DELETE("/:id/like", resourceHandler.Unlike, requireAuth)

	// --- Notifications ---
	notifications := e.Group("/notifications", requireAuth)
	notifications.GET("", notificationHandler.List)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= 500 {
				event = log.Error()
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
