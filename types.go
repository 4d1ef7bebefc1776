package folio

import (
	"github.com/a-h/templ"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/profile"
	"github.com/eringen/folio/views"
)

// ViewFuncs holds the components the handlers render. Sites override any of
// them to own their templates; DefaultViews supplies the rest.
type ViewFuncs struct {
	Home        func(p *profile.Profile, recent []blog.Post) templ.Component
	BlogList    func(view blog.View, tags []string) templ.Component
	BlogSection func(view blog.View, tags []string) templ.Component
	Post        func(post blog.Post, related []blog.Post) templ.Component
	PostPartial func(post blog.Post, related []blog.Post) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// DefaultViews returns the built-in pages from the views package.
func DefaultViews(cfg views.SiteConfig) ViewFuncs {
	return ViewFuncs{
		Home: func(p *profile.Profile, recent []blog.Post) templ.Component {
			return views.Home(cfg, p, recent)
		},
		BlogList: func(view blog.View, tags []string) templ.Component {
			return views.BlogList(cfg, view, tags)
		},
		BlogSection: views.BlogSection,
		Post: func(post blog.Post, related []blog.Post) templ.Component {
			return views.BlogPost(cfg, post, related)
		},
		PostPartial: views.PostArticle,
		NotFound: func() templ.Component {
			return views.NotFound(cfg)
		},
		ServerError: func() templ.Component {
			return views.ServerError(cfg)
		},
	}
}

func (v ViewFuncs) withDefaults(d ViewFuncs) ViewFuncs {
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.BlogList == nil {
		v.BlogList = d.BlogList
	}
	if v.BlogSection == nil {
		v.BlogSection = d.BlogSection
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.PostPartial == nil {
		v.PostPartial = d.PostPartial
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
	return v
}
