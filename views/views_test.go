package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/profile"
)

var testCfg = SiteConfig{Name: "Test Site", URL: "http://example.com", Author: "Ada"}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestPostCardFullPost(t *testing.T) {
	p := blog.Parse("full", "# Full Post\n## The subtitle\n\n![me](/media/me.jpg)\n![cover](/media/cover.jpg)\n\n5 min read · Mar 3, 2024\n\nBody text here.\n")
	out := render(t, PostCard(p))
	for _, want := range []string{
		`<img loading="lazy" src="/media/cover.jpg?w=640" alt="Full Post"/>`,
		`<h3 class="blogTitle">Full Post</h3>`,
		`<div class="blogTileSubtitle">The subtitle</div>`,
		`<p class="blogExcerpt">Body text here.</p>`,
		`<span>5 min read</span><span class="dot">·</span>`,
		`href="/blog/full/" class="readMoreBtn"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q\n%s", want, out)
		}
	}
}

func TestPostCardOmitsMissingFields(t *testing.T) {
	p := blog.Parse("bare", "Just some words.")
	out := render(t, PostCard(p))
	for _, unwanted := range []string{"<img", "blogTileSubtitle", "blogMeta", "dot", "postTags"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("card should not contain %q\n%s", unwanted, out)
		}
	}
	if !strings.Contains(out, `<h3 class="blogTitle"></h3>`) {
		t.Errorf("untitled card should still have a title slot\n%s", out)
	}
}

func TestMetaLineSeparator(t *testing.T) {
	tests := []struct {
		name    string
		post    blog.Post
		wantDot bool
	}{
		{"both", blog.Post{ReadTime: "3 min read", Date: "2024-01-01"}, true},
		{"read time only", blog.Post{ReadTime: "3 min read"}, false},
		{"date only", blog.Post{Date: "2024-01-01"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &html{w: &buf}
			writeMeta(h, "m", tt.post)
			if got := strings.Contains(buf.String(), "·"); got != tt.wantDot {
				t.Errorf("dot present = %v, want %v: %s", got, tt.wantDot, buf.String())
			}
		})
	}
}

func TestComponentsEscapeText(t *testing.T) {
	p := blog.Parse("x", "# <script>alert(1)</script>\n\nA & B")
	out := render(t, PostCard(p))
	if strings.Contains(out, "<script>") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped title: %s", out)
	}
}

func TestUnsafeURLsDropped(t *testing.T) {
	p := blog.Parse("x", "# Title\n\n![a](javascript:alert(1))\n\nText")
	out := render(t, PostCard(p))
	if strings.Contains(out, "javascript:") {
		t.Errorf("unsafe url rendered: %s", out)
	}
}

func TestBlogSectionNotFoundNotice(t *testing.T) {
	view := blog.View{Route: blog.Route{Kind: blog.RoutePost, Slug: "gone"}, NotFound: true}
	out := render(t, BlogSection(view, nil))
	if !strings.Contains(out, "could not be found") {
		t.Error("missing notice")
	}
	if !strings.Contains(out, "No posts yet.") {
		t.Error("empty list should say so")
	}

	out = render(t, BlogSection(blog.View{Route: blog.Route{Kind: blog.RouteList}}, nil))
	if strings.Contains(out, "could not be found") {
		t.Error("notice shown on a plain list")
	}
}

func TestBlogSectionTags(t *testing.T) {
	view := blog.View{Route: blog.Route{Kind: blog.RouteList, Tag: "go"}}
	out := render(t, BlogSection(view, []string{"go", "web"}))
	if !strings.Contains(out, `<a class="tag" href="/blog/">all</a>`) {
		t.Errorf("all link should be inactive: %s", out)
	}
	if !strings.Contains(out, `<a class="tag tag-active" href="/blog/?tag=go">go</a>`) {
		t.Errorf("go pill should be active: %s", out)
	}
	if !strings.Contains(out, `<a class="tag" href="/blog/?tag=web">web</a>`) {
		t.Errorf("web pill should be inactive: %s", out)
	}
}

func TestBlogPostPage(t *testing.T) {
	p := blog.Parse("deep-dive", "# Deep Dive\n## Into things\n\n![me](/media/me.jpg)\n\n2024-02-02\n\nParagraph with **bold**.\n")
	out := render(t, BlogPost(testCfg, p, nil))
	for _, want := range []string{
		"<title>Deep Dive | Test Site</title>",
		`<link rel="canonical" href="http://example.com/blog/deep-dive/"/>`,
		`<meta property="og:type" content="article"/>`,
		`<h1 class="blogPostTitle">Deep Dive</h1>`,
		`<img class="blogProfilePic" alt="Author profile" src="/media/me.jpg"/>`,
		`<time datetime="2024-02-02">2024-02-02</time>`,
		"<strong>bold</strong>",
		`href="/blog/">← Back to Blog</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("post page missing %q", want)
		}
	}
	if strings.Contains(out, "<h1 id=") {
		t.Error("title heading should be stripped from the body")
	}
}

func TestRelatedPosts(t *testing.T) {
	current := blog.Post{Slug: "a", Tags: []string{"go"}}
	posts := []blog.Post{
		current,
		{Slug: "b", Tags: []string{"go", "web"}},
		{Slug: "c", Tags: []string{"css"}},
		{Slug: "d", Tags: []string{"go"}},
		{Slug: "e", Tags: []string{"go"}},
	}
	got := RelatedPosts(current, posts, 2)
	if len(got) != 2 || got[0].Slug != "b" || got[1].Slug != "d" {
		t.Errorf("RelatedPosts = %+v", got)
	}
}

func TestTileSrc(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"/media/a.jpg", "/media/a.jpg?w=640"},
		{"/media/a.jpg?w=100", "/media/a.jpg?w=100"},
		{"/media/avatar.svg", "/media/avatar.svg"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
	}
	for _, tt := range tests {
		if got := TileSrc(tt.in); got != tt.expected {
			t.Errorf("TileSrc(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestHomePage(t *testing.T) {
	p := &profile.Profile{
		Name:   "Ada Example",
		Role:   "Engineer",
		GitHub: "ada",
		Skills: []profile.SkillGroup{{Name: "Languages", Skills: []string{"Go"}}},
	}
	out := render(t, Home(testCfg, p, []blog.Post{{Slug: "x", Title: "Recent One", Link: "/blog/x/"}}))
	for _, want := range []string{
		`<h1 class="heroName">Ada Example</h1>`,
		`href="https://github.com/ada"`,
		`<li class="skill">Go</li>`,
		"Recent One",
		`"@type":"WebSite"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home missing %q", want)
		}
	}
	if strings.Contains(out, `id="experience"`) {
		t.Error("empty experience section should be omitted")
	}
}

func TestHomeWithoutProfile(t *testing.T) {
	out := render(t, Home(testCfg, nil, nil))
	if !strings.Contains(out, "<main") || strings.Contains(out, `class="hero"`) {
		t.Errorf("unexpected home without profile: %s", out)
	}
}

func TestErrorPages(t *testing.T) {
	if out := render(t, NotFound(testCfg)); !strings.Contains(out, "Page not found") {
		t.Error("NotFound page text missing")
	}
	if out := render(t, ServerError(testCfg)); !strings.Contains(out, "Something went wrong") {
		t.Error("ServerError page text missing")
	}
}

func TestJsonLDIsNotHTMLEscaped(t *testing.T) {
	p := blog.Post{Slug: "a", Title: "Tom & Jerry"}
	out := BlogPostingJsonLD(testCfg, p)
	if strings.Contains(out, "&amp;") {
		t.Errorf("JSON-LD should not be HTML-escaped: %s", out)
	}
	if !strings.Contains(out, `Tom \u0026 Jerry`) {
		t.Errorf("json.Marshal should escape &: %s", out)
	}
}
