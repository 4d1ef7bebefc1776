package blog

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Repository is the parsed, ordered set of posts. It is built once and is
// safe for concurrent use because nothing in it changes after construction.
type Repository struct {
	posts  []Post
	bySlug map[string]int
	tags   []string
}

// NewRepository parses every entry of store.
func NewRepository(ctx context.Context, store *Store) (*Repository, error) {
	entries, err := store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog: load entries: %w", err)
	}
	posts := make([]Post, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, Parse(e.Slug, e.Raw))
	}
	return newRepository(posts), nil
}

func newRepository(posts []Post) *Repository {
	SortPosts(posts)
	r := &Repository{
		posts:  posts,
		bySlug: make(map[string]int, len(posts)),
	}
	set := make(map[string]struct{})
	for i, p := range posts {
		r.bySlug[p.Slug] = i
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	for t := range set {
		r.tags = append(r.tags, t)
	}
	sort.Strings(r.tags)
	return r
}

// SortPosts orders posts in place: dated posts first, newest first, then
// dateless posts by title. Equal keys fall back to the slug so the order is
// total.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		if a.HasDate() && !a.Published.Equal(b.Published) {
			return a.Published.After(b.Published)
		}
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
		if at != bt {
			return at < bt
		}
		return a.Slug < b.Slug
	})
}

// ListAll returns every post in display order. The slice is a copy.
func (r *Repository) ListAll() []Post {
	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// ListByTag returns the posts tagged with tag. An empty tag lists all posts.
func (r *Repository) ListByTag(tag string) []Post {
	if strings.TrimSpace(tag) == "" {
		return r.ListAll()
	}
	var out []Post
	for _, p := range r.posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the post for slug. ok is false when there is none.
func (r *Repository) Get(slug string) (Post, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return r.posts[i], true
}

// Tags returns every tag in use, sorted.
func (r *Repository) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len returns the number of posts.
func (r *Repository) Len() int {
	return len(r.posts)
}
