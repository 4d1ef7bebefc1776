package views

import (
	"context"

	"github.com/a-h/templ"
)

// NotFound is the generic 404 page for paths outside the blog.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you were looking for does not exist.")
}

// ServerError is shown when a handler fails unexpectedly.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg SiteConfig, title, msg string) templ.Component {
	meta := PageMeta{Title: title}
	return Layout(cfg, meta, component(func(ctx context.Context, h *html) {
		h.raw(`<section class="errorPage">`)
		h.elem("h1", "", title)
		h.elem("p", "", msg)
		h.raw(`<a href="/">Home</a> · <a href="/blog/">Blog</a></section>`)
	}))
}
