package http

import (
	"embed"
	"html/template"
	"time"

	"todo_webapp/internal/db"
	"todo_webapp/internal/http/handlers"
	"todo_webapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Options struct {
	Version string

	// RateLimit caps mutating requests per client per window; 0 disables it.
	RateLimit       int
	RateLimitWindow time.Duration
	Redis           *redis.Client
}

// NewRouter builds the engine with the standard middleware chain and routes.
func NewRouter(tasks handlers.TaskStore, conns db.Provider, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(), middleware.Metrics())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	RegisterRoutes(r, tasks, conns, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, tasks handlers.TaskStore, conns db.Provider, opts Options) {
	h := handlers.NewHandler(tasks)
	healthHandler := handlers.NewHealthHandler(conns, opts.Version)

	window := opts.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	limit := middleware.RateLimit(opts.Redis, opts.RateLimit, window)

	// Health checks and metrics (no rate limiting)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Pages
	r.GET("/", h.Index)
	r.POST("/add", limit, h.AddTask)
	r.GET("/delete/:id", limit, h.DeleteTask)

	// JSON API
	v1 := r.Group("/api/v1")
	{
		v1.GET("/tasks", h.ListTasks)
		v1.POST("/tasks", limit, h.CreateTask)
		v1.DELETE("/tasks/:id", limit, h.RemoveTask)
	}
}
