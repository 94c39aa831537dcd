// Package api exposes the damage calculator over HTTP with gin.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/dmgcalc/internal/damage"
	"github.com/udisondev/dmgcalc/internal/model"
)

// TemplateRepository is the template storage used by the /api/templates routes.
type TemplateRepository interface {
	Create(ctx context.Context, t model.Template) (model.Template, error)
	Get(ctx context.Context, id int64) (model.Template, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Template, error)
	Delete(ctx context.Context, id int64) error
}

// Handler serves the calculator routes.
type Handler struct {
	svc       *damage.Service
	templates TemplateRepository
}

// NewHandler creates a Handler. templates may be nil, in which case the
// template routes are not registered.
func NewHandler(svc *damage.Service, templates TemplateRepository) *Handler {
	return &Handler{svc: svc, templates: templates}
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		dmg := api.Group("/damage")
		{
			dmg.POST("/calculate", h.calculate)
			dmg.POST("/batch", h.batch)
		}

		api.GET("/species", h.species)
		api.GET("/moves", h.moves)
		api.GET("/natures", h.natures)
		api.GET("/types", h.types)
		api.GET("/effectiveness", h.effectiveness)

		if h.templates != nil {
			tpl := api.Group("/templates")
			{
				tpl.POST("", h.createTemplate)
				tpl.GET("", h.listTemplates)
				tpl.GET("/:id", h.getTemplate)
				tpl.DELETE("/:id", h.deleteTemplate)
			}
		}
	}
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		lvl := slog.LevelDebug
		if status >= http.StatusInternalServerError {
			lvl = slog.LevelError
		}
		slog.Log(c.Request.Context(), lvl, "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"latency", time.Since(start),
			"client", c.ClientIP())
	}
}
