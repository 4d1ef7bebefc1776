// Package folio is a portfolio and blog server built with Go, Echo, and templ.
// It serves a profile home page and a markdown blog from a read-only content
// set, plus RSS, sitemap and resized media.
//
// Sites can replace any page through the ViewFuncs struct; folio handles
// loading, routing, middleware and caching.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/profile"
)

// Paths inside the content set.
const (
	postsDir    = "posts"
	imagesDir   = "images"
	profileFile = "profile.yaml"
)

// App is the central folio application. It wires together the content,
// handlers, middleware, and page components.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Repo    *blog.Repository
	Profile *profile.Profile // nil when the content set has no profile.yaml
	Views   ViewFuncs

	content       fs.FS
	media         *mediaCache
	resizeLimiter *ipLimiter
	customRoutes  []func(*App)
	staticDir     string
	ready         bool
}

// New creates an App. Nil fields of views fall back to the built-in pages.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views.withDefaults(DefaultViews(cfg.Site())),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	if a.content == nil {
		a.content = os.DirFS(a.Config.ContentDir)
	}
	return a
}

// Init loads the content set and registers middleware and routes. Start
// calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Init(ctx context.Context) error {
	if a.ready {
		return nil
	}
	a.Echo.Logger.SetLevel(parseLogLevel(a.Config.LogLevel))

	if err := a.load(ctx); err != nil {
		return err
	}
	a.media = newMediaCache(a.content, imagesDir)
	a.resizeLimiter = newIPLimiter(resizesPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start initializes the app and serves HTTP until the server is closed.
func (a *App) Start() error {
	if err := a.Init(context.Background()); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) load(ctx context.Context) error {
	store, err := blog.NewStore(a.content, postsDir)
	if err != nil {
		return fmt.Errorf("folio: load posts: %w", err)
	}
	repo, err := blog.NewRepository(ctx, store)
	if err != nil {
		return fmt.Errorf("folio: load posts: %w", err)
	}
	a.Repo = repo

	p, err := profile.Load(a.content, profileFile)
	switch {
	case err == nil:
		a.Profile = p
	case errors.Is(err, fs.ErrNotExist):
		a.Echo.Logger.Warnf("no %s in content set, home page shows posts only", profileFile)
	default:
		return fmt.Errorf("folio: %w", err)
	}

	a.Echo.Logger.Infof("loaded %d posts, %d tags", repo.Len(), len(repo.Tags()))
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Built-in stylesheet, then the site's own static assets.
	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(assets)))))
	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/media/*", a.handleMedia)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
