package folio

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/views"
)

const (
	recentPosts  = 3
	relatedPosts = 3
)

func (a *App) handleHome(c echo.Context) error {
	recent := a.Repo.ListAll()
	if len(recent) > recentPosts {
		recent = recent[:recentPosts]
	}
	return Render(c, a.Views.Home(a.Profile, recent))
}

func (a *App) handleBlog(c echo.Context) error {
	route := blog.ParseRoute(c.Request().URL.RequestURI())
	route.Tag = strings.ToLower(strings.TrimSpace(route.Tag))
	return a.renderBlog(c, blog.Resolve(a.Repo, route))
}

func (a *App) handlePost(c echo.Context) error {
	// Slugs may carry non-ASCII letters, which arrive percent-encoded.
	slug, err := url.PathUnescape(c.Param("slug"))
	if err != nil {
		return echo.ErrNotFound
	}
	route := blog.Route{Kind: blog.RoutePost, Slug: slug}
	return a.renderBlog(c, blog.Resolve(a.Repo, route))
}

// renderBlog writes a resolved blog view. An unknown slug renders the list
// with status 404. A request whose context is already done was abandoned by
// the browser for a newer navigation and gets no body.
func (a *App) renderBlog(c echo.Context, view blog.View) error {
	if err := c.Request().Context().Err(); err != nil {
		c.Logger().Debugf("skip render of %s: %v", c.Request().URL.Path, err)
		return nil
	}
	partial := isHTMX(c)

	if view.IsPost() {
		related := views.RelatedPosts(view.Post, a.Repo.ListAll(), relatedPosts)
		if partial && c.QueryParam("partial") == "post" {
			return Render(c, a.Views.PostPartial(view.Post, related))
		}
		return Render(c, a.Views.Post(view.Post, related))
	}

	code := http.StatusOK
	if view.NotFound {
		code = http.StatusNotFound
	}
	tags := a.Repo.Tags()
	if partial && c.QueryParam("partial") == "blog" {
		return RenderStatus(c, code, a.Views.BlogSection(view, tags))
	}
	return RenderStatus(c, code, a.Views.BlogList(view, tags))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Repo.ListAll(), a.Repo.Tags())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Repo.ListAll())
}

// handleRobots serves robots.txt from the static dir when the site has one,
// and a permissive default pointing at the sitemap otherwise.
func (a *App) handleRobots(c echo.Context) error {
	data, err := os.ReadFile(filepath.Join(a.staticDir, "robots.txt"))
	if errors.Is(err, fs.ErrNotExist) {
		body := "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(a.Config.URL, "/") + "/sitemap.xml\n"
		return c.String(http.StatusOK, body)
	}
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, data)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
