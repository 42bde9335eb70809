package app

import (
	"github.com/Aditya-2aga/todo-assistant/internal/config"
	"github.com/Aditya-2aga/todo-assistant/internal/gemini"
	"github.com/Aditya-2aga/todo-assistant/internal/handlers"
	"github.com/Aditya-2aga/todo-assistant/internal/repo"
	"github.com/Aditya-2aga/todo-assistant/internal/service"
	"github.com/Aditya-2aga/todo-assistant/internal/slack"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, log *zap.SugaredLogger) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var todoRepo repo.TodoRepo
	if db != nil {
		todoRepo = repo.NewPGTodoRepo(db)
	} else {
		todoRepo = repo.Unconfigured()
	}

	todoSvc := service.NewTodoService(todoRepo)
	todoHandler := handlers.NewTodoHandler(todoSvc)

	gen := gemini.New(cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithTimeout(cfg.Upstream.Timeout.Duration()),
	)
	notifier := slack.New(cfg.Slack.WebhookURL,
		slack.WithTimeout(cfg.Upstream.Timeout.Duration()),
	)
	summarySvc := service.NewSummaryService(todoRepo, gen, notifier, log)
	summarizeHandler := handlers.NewSummarizeHandler(summarySvc)

	todos := r.Group("/api/todos")
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.PUT("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)
	todos.POST("/summarize",
		RateLimit(rdb, cfg.Redis.SummarizeLimit, cfg.Redis.SummarizeWindow.Duration()),
		summarizeHandler.Summarize,
	)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo Summary Assistant",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
			"api":     "/api/todos",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
