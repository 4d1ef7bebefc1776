package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/eringen/folio/blog"
)

// openNavigator loads the configured content set into a Navigator.
func openNavigator(ctx context.Context) (*blog.Navigator, error) {
	cfg := siteConfig()
	store, err := blog.NewStore(contentFS(cfg), "posts")
	if err != nil {
		return nil, err
	}
	repo, err := blog.NewRepository(ctx, store)
	if err != nil {
		return nil, err
	}
	return blog.NewNavigator(repo), nil
}

func runList(w io.Writer, tag string) error {
	ctx := context.Background()
	nav, err := openNavigator(ctx)
	if err != nil {
		return err
	}
	target := "/blog"
	if tag != "" {
		target += "?tag=" + url.QueryEscape(tag)
	}
	view, err := nav.Navigate(ctx, target)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tDATE\tTAGS")
	for _, p := range view.Posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Slug, p.Title, p.Date, strings.Join(p.Tags, ","))
	}
	return tw.Flush()
}

func runShow(w io.Writer, slug string) error {
	ctx := context.Background()
	nav, err := openNavigator(ctx)
	if err != nil {
		return err
	}
	view, err := nav.Navigate(ctx, "/blog/"+url.PathEscape(slug))
	if err != nil {
		return err
	}
	if !view.IsPost() {
		return fmt.Errorf("%w: %q", blog.ErrNotFound, slug)
	}

	p := view.Post
	fmt.Fprintf(w, "Title:    %s\n", p.Title)
	if p.Subtitle != "" {
		fmt.Fprintf(w, "Subtitle: %s\n", p.Subtitle)
	}
	if meta := p.MetaLine(); meta != "" {
		fmt.Fprintf(w, "Meta:     %s\n", meta)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags:     %s\n", strings.Join(p.Tags, ", "))
	}
	if img := p.ProfileImage(); img != "" {
		fmt.Fprintf(w, "Profile:  %s\n", img)
	}
	if img := p.TileImage(); img != "" {
		fmt.Fprintf(w, "Tile:     %s\n", img)
	}
	fmt.Fprintf(w, "Excerpt:  %s\n\n", p.Excerpt)
	_, err = io.WriteString(w, p.Body())
	return err
}
