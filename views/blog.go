package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/markdown"
)

// BlogList is the full /blog/ page.
func BlogList(cfg SiteConfig, view blog.View, tags []string) templ.Component {
	meta := PageMeta{
		Title:       "Blog",
		Description: "Thoughts, tutorials, and insights about web development",
		URL:         buildURL(cfg.URL, "blog"),
		JSONLD:      WebsiteJsonLD(cfg),
	}
	return Layout(cfg, meta, BlogSection(view, tags))
}

// BlogSection renders the list header, tag filter and one card per post.
// It is also served alone for htmx partial requests.
func BlogSection(view blog.View, tags []string) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<section class="blog" id="blog"><div class="blogHeader"><h2>Blog &amp; Articles</h2>`)
		h.raw(`<p>Thoughts, tutorials, and insights about web development</p></div>`)

		if view.NotFound {
			h.raw(`<p class="notice" role="status">That post could not be found. Here is everything else.</p>`)
		}

		if len(tags) > 0 {
			h.raw(`<nav class="tags" aria-label="Tags">`)
			h.raw("<a")
			h.attr("class", TagClass(view.Route.Tag == ""))
			h.raw(` href="/blog/">all</a>`)
			for _, t := range tags {
				h.raw("<a")
				h.attr("class", TagClass(view.Route.Tag == t))
				h.attr("href", TagURL(t))
				h.raw(">")
				h.text(t)
				h.raw("</a>")
			}
			h.raw("</nav>")
		}

		if len(view.Posts) == 0 {
			h.raw(`<p class="empty">No posts yet.</p>`)
		} else {
			h.raw(`<div class="blogGrid">`)
			for _, p := range view.Posts {
				h.render(ctx, PostCard(p))
			}
			h.raw("</div>")
		}
		h.raw("</section>")
	})
}

// PostCard is one post summary in the list. Every optional field is simply
// left out when empty.
func PostCard(p blog.Post) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<article class="blogCard">`)
		if img := p.TileImage(); img != "" && markdown.SafeURL(img) != "" {
			h.raw(`<div class="blogImage"><img loading="lazy"`)
			h.url("src", TileSrc(img))
			h.attr("alt", p.Title)
			h.raw("/></div>")
		}
		h.raw(`<div class="blogContent">`)
		h.raw(`<h3 class="blogTitle">`)
		h.text(p.Title)
		h.raw("</h3>")
		h.elem("div", "blogTileSubtitle", p.Subtitle)
		h.elem("p", "blogExcerpt", p.Excerpt)
		writeMeta(h, "blogMeta", p)
		writeTags(h, p.Tags)
		h.raw("<a")
		h.url("href", p.Link)
		h.raw(` class="readMoreBtn">Read More</a></div></article>`)
	})
}

// BlogPost is the full post page.
func BlogPost(cfg SiteConfig, p blog.Post, related []blog.Post) templ.Component {
	meta := PageMeta{
		Title:       p.Title,
		Description: markdown.PlainText(p.Excerpt),
		URL:         buildURL(cfg.URL, "blog", p.Slug),
		OGType:      "article",
		Image:       p.TileImage(),
		JSONLD:      BlogPostingJsonLD(cfg, p),
	}
	return Layout(cfg, meta, PostArticle(p, related))
}

// PostArticle renders the post itself: headings, byline and body. The body
// has its title, subtitle and profile image removed because they are shown
// here as structured fields.
func PostArticle(p blog.Post, related []blog.Post) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<section class="blog"><a class="backToListBtn" href="/blog/">← Back to Blog</a>`)
		h.raw(`<article class="blogPost">`)
		h.elem("h1", "blogPostTitle", p.Title)
		h.elem("h2", "blogPostSubtitle", p.Subtitle)

		h.raw(`<div class="blogAuthorRow">`)
		if img := p.ProfileImage(); markdown.SafeURL(img) != "" {
			h.raw(`<img class="blogProfilePic" alt="Author profile"`)
			h.url("src", img)
			h.raw("/>")
		}
		h.raw(`<div class="blogAuthorMeta">`)
		writeMeta(h, "blogAuthorDetails", p)
		h.raw("</div></div>")
		writeTags(h, p.Tags)

		h.raw(`<div class="blogPostContent">`)
		h.render(ctx, markdown.Markdown(p.Body()))
		h.raw("</div></article>")

		if len(related) > 0 {
			h.raw(`<aside class="related"><h3>Related posts</h3><ul>`)
			for _, r := range related {
				h.raw("<li><a")
				h.url("href", r.Link)
				h.raw(">")
				h.text(r.Title)
				h.raw("</a></li>")
			}
			h.raw("</ul></aside>")
		}
		h.raw("</section>")
	})
}

// writeMeta renders "read time · date", omitting the dot unless both exist.
func writeMeta(h *html, class string, p blog.Post) {
	if p.ReadTime == "" && p.Date == "" {
		return
	}
	h.raw("<div")
	h.attr("class", class)
	h.raw(">")
	h.elem("span", "", p.ReadTime)
	if p.ReadTime != "" && p.Date != "" {
		h.raw(`<span class="dot">·</span>`)
	}
	if p.Date != "" {
		h.raw("<time")
		if p.HasDate() {
			h.attr("datetime", p.Published.Format("2006-01-02"))
		}
		h.raw(">")
		h.text(p.Date)
		h.raw("</time>")
	}
	h.raw("</div>")
}

func writeTags(h *html, tags []string) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<ul class="postTags">`)
	for _, t := range tags {
		h.raw("<li><a")
		h.attr("class", TagClass(false))
		h.attr("href", TagURL(t))
		h.raw(">")
		h.text(t)
		h.raw("</a></li>")
	}
	h.raw("</ul>")
}

// RelatedPosts returns up to limit posts sharing at least one tag with
// current, in repository order.
func RelatedPosts(current blog.Post, posts []blog.Post, limit int) []blog.Post {
	var related []blog.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if current.HasTag(t) {
				related = append(related, p)
				break
			}
		}
		if len(related) == limit {
			break
		}
	}
	return related
}
