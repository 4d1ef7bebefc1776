package blog

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/first-post.md":   {Data: []byte("# First\nHello.")},
		"posts/Second Post.md":  {Data: []byte("# Second\nWorld.")},
		"posts/notes.txt":       {Data: []byte("ignored")},
		"posts/drafts/draft.md": {Data: []byte("# Draft")},
	}
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(testFS(), "posts")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	all, err := s.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if all[0].Slug != "first-post" || all[1].Slug != "second-post" {
		t.Errorf("slugs = %q, %q", all[0].Slug, all[1].Slug)
	}
	if all[1].Path != "posts/Second Post.md" {
		t.Errorf("Path = %q", all[1].Path)
	}
}

func TestStoreGet(t *testing.T) {
	s, err := NewStore(testFS(), "posts")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	e, err := s.Get(context.Background(), "first-post")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Raw != "# First\nHello." {
		t.Errorf("Raw = %q", e.Raw)
	}

	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestStoreHonoursContext(t *testing.T) {
	s, err := NewStore(testFS(), "posts")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.All(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("All error = %v, want context.Canceled", err)
	}
	if _, err := s.Get(ctx, "first-post"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
}

func TestNewStoreDuplicateSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/my-post.md": {Data: []byte("# A")},
		"posts/My Post.md": {Data: []byte("# B")},
	}
	if _, err := NewStore(fsys, "posts"); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("NewStore error = %v, want ErrDuplicateSlug", err)
	}
}

func TestNewStoreNonASCIIFilenames(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/日本語.md":  {Data: []byte("# Nihongo")},
		"posts/café.md": {Data: []byte("# Cafe")},
		"posts/über.md": {Data: []byte("# Uber")},
	}
	s, err := NewStore(fsys, "posts")
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	for _, slug := range []string{"日本語", "café", "über"} {
		if _, err := s.Get(context.Background(), slug); err != nil {
			t.Errorf("Get(%q) failed: %v", slug, err)
		}
	}
}

func TestNewStoreEmptySlug(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/ok.md":  {Data: []byte("# OK")},
		"posts/---.md": {Data: []byte("# Dashes")},
	}
	if _, err := NewStore(fsys, "posts"); !errors.Is(err, ErrEmptySlug) {
		t.Fatalf("NewStore error = %v, want ErrEmptySlug", err)
	}
}

func TestNewStoreMissingDir(t *testing.T) {
	if _, err := NewStore(fstest.MapFS{}, "posts"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSlugFromFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"post-1.md", "post-1"},
		{"My First Post.md", "my-first-post"},
		{"dir/Go & Web.MD", "go-web"},
		{"---.md", ""},
		{"café.md", "café"},
		{"Über Go.md", "über-go"},
		{"日本語.md", "日本語"},
	}
	for _, tt := range tests {
		if got := SlugFromFilename(tt.input); got != tt.expected {
			t.Errorf("SlugFromFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
