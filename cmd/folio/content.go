package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/eringen/folio"
)

// builtinContent is the sample site served when CONTENT_DIR is unset.
//
//go:embed all:content
var builtinContent embed.FS

// siteConfig reads the site settings from the environment.
func siteConfig() folio.SiteConfig {
	return folio.SiteConfig{
		Name:        folio.EnvOr("SITE_NAME", ""),
		URL:         folio.EnvOr("SITE_URL", ""),
		Description: folio.EnvOr("SITE_DESCRIPTION", ""),
		Author:      folio.EnvOr("SITE_AUTHOR", ""),
		Addr:        folio.EnvOr("ADDR", ""),
		LogLevel:    folio.EnvOr("LOG_LEVEL", ""),
		ContentDir:  folio.EnvOr("CONTENT_DIR", ""),
	}
}

// contentFS returns CONTENT_DIR when set and the built-in set otherwise.
func contentFS(cfg folio.SiteConfig) fs.FS {
	if cfg.ContentDir != "" {
		return os.DirFS(cfg.ContentDir)
	}
	sub, err := fs.Sub(builtinContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}
