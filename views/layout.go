// Package views holds the default page components. Every component is a
// templ.Component so sites can swap any of them for their own templates.
package views

import (
	"context"

	"github.com/a-h/templ"
)

// Layout wraps body in the site chrome: head metadata, navigation and footer.
// The main element swaps its content on boosted navigation; hx-sync makes a
// newer navigation abort the one in flight.
func Layout(cfg SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		title := cfg.Name
		if meta.Title != "" && meta.Title != cfg.Name {
			title = meta.Title + " | " + cfg.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title>")
		if desc != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", desc)
			h.raw("/>")
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.url("href", meta.URL)
			h.raw("/>")
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", title)
		h.raw(`/><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw("/>")
		if desc != "" {
			h.raw(`<meta property="og:description"`)
			h.attr("content", desc)
			h.raw("/>")
		}
		if meta.URL != "" {
			h.raw(`<meta property="og:url"`)
			h.url("content", meta.URL)
			h.raw("/>")
		}
		if meta.Image != "" {
			h.raw(`<meta property="og:image"`)
			h.url("content", absURL(cfg.URL, meta.Image))
			h.raw("/>")
		}
		h.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		h.attr("title", cfg.Name)
		h.raw("/>")
		h.raw(`<link rel="stylesheet" href="/public/site.css"/>`)
		h.raw(`<script src="/public/htmx.min.js" defer></script>`)
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the tag.
			h.raw(`<script type="application/ld+json">`)
			h.raw(meta.JSONLD)
			h.raw("</script>")
		}
		h.raw("</head><body hx-boost=\"true\">")

		h.raw(`<header class="nav"><a class="brand" href="/">`)
		h.text(cfg.Name)
		h.raw(`</a><nav><a href="/#experience">Experience</a><a href="/#skills">Skills</a>`)
		h.raw(`<a href="/#projects">Projects</a><a href="/blog/">Blog</a></nav></header>`)

		h.raw(`<main id="main" hx-sync="this:replace">`)
		h.render(ctx, body)
		h.raw("</main>")

		h.raw(`<footer class="footer"><p>`)
		h.text(cfg.Name)
		if cfg.Author != "" && cfg.Author != cfg.Name {
			h.text(" · " + cfg.Author)
		}
		h.raw(`</p><a href="/feed.xml">RSS</a></footer></body></html>`)
	})
}
