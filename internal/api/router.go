// Package api exposes keywords, mentions, sources and trends over HTTP.
package api

import (
	"context"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trendwatch/internal/service"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Keywords *service.KeywordService
	Mentions service.MentionStore
	Sources  *service.SourceService
	Trends   *service.TrendsService
	Health   map[string]HealthCheck
}

type Handler struct {
	deps   Deps
	logger *slog.Logger
}

func NewRouter(deps Deps, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	h := &Handler{deps: deps, logger: logger.With("component", "api")}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.logger))
	r.Use(prometheusMiddleware())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	kw := r.Group("/keywords")
	{
		kw.GET("", h.listKeywords)
		kw.POST("", h.createKeyword)
		kw.GET("/:id", h.getKeyword)
		kw.PUT("/:id", h.updateKeyword)
		kw.DELETE("/:id", h.archiveKeyword)
	}

	m := r.Group("/mentions")
	{
		m.GET("", h.listMentions)
		m.GET("/:id", h.getMention)
	}

	src := r.Group("/sources")
	{
		src.GET("", h.listSources)
		src.POST("", h.createSource)
		src.POST("/validate", h.validateSource)
		src.GET("/:id", h.getSource)
		src.PUT("/:id", h.updateSource)
		src.DELETE("/:id", h.deleteSource)
		src.PATCH("/:id/toggle", h.toggleSource)
		src.POST("/:id/process", h.processSource)
	}

	tr := r.Group("/trends")
	{
		tr.GET("/overview", h.overview)
		tr.GET("/:keywordId", h.keywordTrend)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cfg
}
