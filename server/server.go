// Package server wires the widget's single echo application shell: JSON API,
// HTML pages, bridge and GraphQL all hang off one parametrized setup instead
// of per-variant entrypoints.
package server

import (
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shopwidget.GO/api"
	_ "shopwidget.GO/api/bridge"
	_ "shopwidget.GO/api/graphql"
	_ "shopwidget.GO/api/widget"
	"shopwidget.GO/bridge"
	"shopwidget.GO/config"
	"shopwidget.GO/html"
	"shopwidget.GO/search"
	"shopwidget.GO/session"
)

// Options selects which surfaces a shell mounts.
type Options struct {
	// HeightFunc reports the rendered content height for RESIZE_IFRAME
	// replies. Nil means height 0 (host keeps its current size).
	HeightFunc bridge.HeightFunc
	// TemplateGlob locates the page templates. Empty uses the default.
	TemplateGlob string
}

// NewDeps builds the shared collaborators from global config.
func NewDeps(opts Options) *api.Deps {
	mgr := session.GetManager()
	b := bridge.New(config.AppConfig.AllowedOrigins, opts.HeightFunc)
	// A swept session takes its controller and its queued bridge
	// messages with it.
	mgr.SetEvictFunc(func(id string) {
		api.DropController(id)
		b.Forget(id)
	})
	return &api.Deps{
		Sessions: mgr,
		Searcher: search.NewCached(search.GetService()),
		Bridge:   b,
	}
}

// New assembles the echo application.
func New(deps *api.Deps, opts Options) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	glob := opts.TemplateGlob
	if glob == "" {
		glob = "html/pages/*.html"
	}
	t := &html.Template{
		Templates: template.Must(template.ParseGlob(glob)),
	}
	e.Renderer = t

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)
	html.RegisterWidgetHTMLRoutes(e, deps)

	return e
}

// Start runs the server on the configured port.
func Start(e *echo.Echo) {
	port := config.GetEnv("PORT", "8080")
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
