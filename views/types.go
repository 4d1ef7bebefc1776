package views

// SiteConfig holds site-wide settings populated from environment variables.
// Every page receives it so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Portfolio")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}
