package blog

import (
	"context"
	"errors"
	"testing"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/blog", Route{Kind: RouteList}},
		{"/blog/", Route{Kind: RouteList}},
		{"/blog/?tag=go", Route{Kind: RouteList, Tag: "go"}},
		{"/blog/post-1", Route{Kind: RoutePost, Slug: "post-1"}},
		{"/blog/post-1/", Route{Kind: RoutePost, Slug: "post-1"}},
		{"/blog/a/b", Route{}},
		{"/", Route{}},
		{"/blogger", Route{}},
	}
	for _, tt := range tests {
		if got := ParseRoute(tt.path); got != tt.want {
			t.Errorf("ParseRoute(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	repo := newTestRepository(t, map[string]string{
		"post-1.md": "# One",
		"post-2.md": "# Two",
	})

	list := Resolve(repo, Route{Kind: RouteList})
	if list.IsPost() || len(list.Posts) != 2 {
		t.Errorf("list view = %+v", list)
	}

	post := Resolve(repo, Route{Kind: RoutePost, Slug: "post-2"})
	if !post.IsPost() || post.Post.Title != "Two" {
		t.Errorf("post view = %+v", post)
	}

	missing := Resolve(repo, Route{Kind: RoutePost, Slug: "missing-slug"})
	if missing.IsPost() || !missing.NotFound {
		t.Errorf("missing view IsPost=%v NotFound=%v", missing.IsPost(), missing.NotFound)
	}
	if len(missing.Posts) != 2 {
		t.Errorf("missing view should fall back to the list, got %d posts", len(missing.Posts))
	}
}

func TestNavigatorNavigate(t *testing.T) {
	repo := newTestRepository(t, map[string]string{"post-1.md": "# One"})
	nav := NewNavigator(repo)

	if nav.Current().IsPost() {
		t.Fatal("navigator should start on the list")
	}
	v, err := nav.Navigate(context.Background(), "/blog/post-1")
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if !v.IsPost() || nav.Current().Post.Slug != "post-1" {
		t.Errorf("current = %+v", nav.Current())
	}

	v, err = nav.Navigate(context.Background(), "/blog/missing-slug")
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if !v.NotFound || len(v.Posts) != 1 {
		t.Errorf("missing slug view = %+v", v)
	}
}

func TestNavigatorLastRequestWins(t *testing.T) {
	repo := newTestRepository(t, map[string]string{
		"slow.md": "# Slow",
		"fast.md": "# Fast",
	})
	nav := NewNavigator(repo)

	release := make(chan struct{})
	started := make(chan struct{})
	base := nav.resolve
	nav.resolve = func(ctx context.Context, r Route) (View, error) {
		if r.Slug == "slow" {
			close(started)
			<-release
		}
		return base(ctx, r)
	}

	type result struct {
		view View
		err  error
	}
	slow := make(chan result, 1)
	go func() {
		v, err := nav.Navigate(context.Background(), "/blog/slow")
		slow <- result{v, err}
	}()
	<-started

	if _, err := nav.Navigate(context.Background(), "/blog/fast"); err != nil {
		t.Fatalf("fast Navigate failed: %v", err)
	}
	close(release)

	res := <-slow
	if !errors.Is(res.err, ErrSuperseded) {
		t.Fatalf("slow Navigate error = %v, want ErrSuperseded", res.err)
	}
	if got := nav.Current().Post.Slug; got != "fast" {
		t.Errorf("current slug = %q, want %q", got, "fast")
	}
}

func TestNavigatorCancelledContext(t *testing.T) {
	repo := newTestRepository(t, map[string]string{"a.md": "# A"})
	nav := NewNavigator(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := nav.Navigate(ctx, "/blog/a"); !errors.Is(err, context.Canceled) {
		t.Errorf("Navigate error = %v, want context.Canceled", err)
	}
	if nav.Current().IsPost() {
		t.Error("cancelled navigation changed the current view")
	}
}
