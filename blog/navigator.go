package blog

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrSuperseded is returned by Navigate when a newer navigation started
// before this one finished.
var ErrSuperseded = errors.New("blog: navigation superseded")

// RouteKind identifies which blog view a path maps to.
type RouteKind int

const (
	RouteNone RouteKind = iota
	RouteList
	RoutePost
)

// Route is a parsed blog path.
type Route struct {
	Kind RouteKind
	Slug string
	Tag  string
}

// ParseRoute maps "/blog" to the list and "/blog/<slug>" to a post. A
// trailing slash and a "tag" query parameter are accepted.
func ParseRoute(rawPath string) Route {
	u, err := url.Parse(rawPath)
	if err != nil {
		return Route{}
	}
	p := strings.Trim(u.Path, "/")
	switch {
	case p == "blog":
		return Route{Kind: RouteList, Tag: u.Query().Get("tag")}
	case strings.HasPrefix(p, "blog/"):
		slug := strings.TrimPrefix(p, "blog/")
		if slug == "" || strings.Contains(slug, "/") {
			return Route{}
		}
		return Route{Kind: RoutePost, Slug: slug}
	}
	return Route{}
}

// View is the state a blog page renders from.
type View struct {
	Route    Route
	Posts    []Post
	Post     Post
	NotFound bool // a post was requested but does not exist
}

// IsPost reports whether the view shows a single post.
func (v View) IsPost() bool {
	return v.Route.Kind == RoutePost && !v.NotFound
}

// Resolve builds the view for route. An unknown slug resolves to the list
// with NotFound set.
func Resolve(repo *Repository, route Route) View {
	v := View{Route: route}
	if route.Kind == RoutePost {
		if p, ok := repo.Get(route.Slug); ok {
			v.Post = p
			return v
		}
		v.NotFound = true
	}
	v.Posts = repo.ListByTag(route.Tag)
	return v
}

// Navigator holds the current view for a single reader and applies
// navigations in request order: a resolution that completes after a newer
// navigation began is discarded.
type Navigator struct {
	seq     atomic.Uint64
	mu      sync.Mutex
	current View
	resolve func(ctx context.Context, r Route) (View, error)
}

// NewNavigator returns a Navigator over repo, starting on the list view.
func NewNavigator(repo *Repository) *Navigator {
	n := &Navigator{
		resolve: func(ctx context.Context, r Route) (View, error) {
			if err := ctx.Err(); err != nil {
				return View{}, err
			}
			return Resolve(repo, r), nil
		},
	}
	n.current = Resolve(repo, Route{Kind: RouteList})
	return n
}

// Navigate resolves path and makes it the current view. It returns
// ErrSuperseded without touching the current view if another call to
// Navigate started in the meantime.
func (n *Navigator) Navigate(ctx context.Context, path string) (View, error) {
	id := n.seq.Add(1)
	route := ParseRoute(path)
	if route.Kind == RouteNone {
		route = Route{Kind: RouteList}
	}
	v, err := n.resolve(ctx, route)
	if err != nil {
		return View{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq.Load() != id {
		return View{}, ErrSuperseded
	}
	n.current = v
	return v, nil
}

// Current returns the view of the latest completed navigation.
func (n *Navigator) Current() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
