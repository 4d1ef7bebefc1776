package folio

import (
	"io/fs"

	"github.com/eringen/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD and the footer

	Addr       string // Listen address (default ":3000")
	LogLevel   string // debug, info, warn, error or off (default "info")
	ContentDir string // Content directory when no fs.FS is given (default "content")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
}

// Site returns the subset of the config that pages render from.
func (c SiteConfig) Site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContent reads posts, images and profile.yaml from fsys instead of
// ContentDir. Binaries pass an embed.FS here.
func WithContent(fsys fs.FS) Option {
	return func(a *App) {
		a.content = fsys
	}
}
