package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/lernexhq/lernex/internal/auth"
	"github.com/lernexhq/lernex/internal/cache"
	"github.com/lernexhq/lernex/internal/config"
	"github.com/lernexhq/lernex/internal/domain/course"
	"github.com/lernexhq/lernex/internal/http/handlers"
	"github.com/lernexhq/lernex/internal/http/middlewares"
	"github.com/lernexhq/lernex/internal/observability"
	"github.com/lernexhq/lernex/internal/repo/memory"
)

// Deps carries the optional collaborators main wires in. Nil fields
// degrade gracefully: no queue means no notifications, no registry
// means a fresh one per router.
type Deps struct {
	Cfg      config.Config
	Log      *slog.Logger
	Registry *prometheus.Registry
	Queue    handlers.NotificationEnqueuer
	// QueuePing reports queue connectivity for /readyz.
	QueuePing func() error
}

func NewRouter(d Deps) *gin.Engine {
	if d.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
	}

	metrics := observability.NewProm(d.Registry)

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(d.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(d.Cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(d.Cfg.MaxBodyBytes))
	r.Use(middlewares.RequireJSON())
	r.Use(metrics.GinHandleMiddleware())
	r.Use(otelgin.Middleware("lernex-api"))

	// wire up repositories; everything is volatile and reseeded on boot
	learnersRepo := memory.NewLearnersRepo()
	coursesRepo := memory.NewCoursesRepo()
	coursesRepo.Seed()
	enrollmentsRepo := memory.NewEnrollmentsRepo()
	progressRepo := memory.NewProgressRepo()
	feedbackRepo := memory.NewFeedbackRepo()
	recordsRepo := memory.NewRecordsRepo()
	recommendationsRepo := memory.NewRecommendationsRepo()

	jwtManager := auth.NewManager(d.Cfg.JWTSecret, d.Cfg.AccessTokenTTL())
	authSvc := auth.NewService(learnersRepo, jwtManager)
	guard := middlewares.NewAuthMiddleware(jwtManager, learnersRepo)

	listCache := cache.New[[]course.Course](30 * time.Second)

	// wire up handlers
	healthHandler := handlers.NewHealthHandler(d.QueuePing)
	authHandler := handlers.NewAuthHandler(authSvc, d.Queue, metrics)
	learnersHandler := handlers.NewLearnersHandler(authSvc, learnersRepo)
	coursesHandler := handlers.NewCoursesHandler(coursesRepo, enrollmentsRepo, listCache, d.Queue, metrics)
	enrollmentsHandler := handlers.NewEnrollmentsHandler(enrollmentsRepo)
	progressHandler := handlers.NewProgressHandler(progressRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	recordsHandler := handlers.NewRecordsHandler(recordsRepo)
	recommendationsHandler := handlers.NewRecommendationsHandler(recommendationsRepo)

	// open surface
	r.GET("/", handlers.Root)
	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/readyz", healthHandler.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.POST("/learners", learnersHandler.Create)
	r.GET("/learners", learnersHandler.List)
	r.GET("/learners/:id", learnersHandler.GetByID)

	// everything below requires a valid bearer token
	protected := r.Group("/", guard.RequireAuth())

	protected.GET("/auth/me", authHandler.Me)

	protected.GET("/courses", coursesHandler.List)
	protected.GET("/courses/my-courses", coursesHandler.MyCourses)
	protected.GET("/courses/:id", coursesHandler.GetByID)
	protected.POST("/courses", coursesHandler.Create)
	protected.POST("/courses/:id/enroll", coursesHandler.Enroll)
	protected.POST("/courses/:id/modules", coursesHandler.AddModule)
	protected.POST("/courses/:id/modules/:moduleID/lessons", coursesHandler.AddLesson)
	protected.POST("/courses/:id/modules/:moduleID/lessons/:lessonID/topics", coursesHandler.AddTopic)

	protected.POST("/enrollments", enrollmentsHandler.Create)
	protected.GET("/enrollments", enrollmentsHandler.List)
	protected.GET("/enrollments/:id", enrollmentsHandler.GetByID)

	protected.POST("/progress", progressHandler.Create)
	protected.GET("/progress", progressHandler.List)
	protected.GET("/progress/:id", progressHandler.GetByID)

	protected.POST("/feedback", feedbackHandler.Create)
	protected.GET("/feedback", feedbackHandler.List)
	protected.GET("/feedback/:id", feedbackHandler.GetByID)

	protected.POST("/learning-records", recordsHandler.Create)
	protected.GET("/learning-records", recordsHandler.List)
	protected.GET("/learning-records/:id", recordsHandler.GetByID)

	protected.POST("/recommendations", recommendationsHandler.Create)
	protected.GET("/recommendations", recommendationsHandler.List)
	protected.GET("/recommendations/:id", recommendationsHandler.GetByID)

	return r
}
