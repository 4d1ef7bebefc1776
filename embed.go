package folio

import "embed"

// EmbeddedAssets contains static assets shipped with folio. Only site.css
// is served from here; htmx.min.js and anything else under /public/ comes
// from the site's static dir.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
