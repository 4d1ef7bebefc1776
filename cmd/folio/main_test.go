package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/profile"
)

func TestBuiltinContentLoads(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	fsys := contentFS(siteConfig())
	if _, err := profile.Load(fsys, "profile.yaml"); err != nil {
		t.Fatalf("built-in profile: %v", err)
	}
	store, err := blog.NewStore(fsys, "posts")
	if err != nil {
		t.Fatalf("built-in posts: %v", err)
	}
	if store.Len() != 3 {
		t.Errorf("built-in posts = %d, want 3", store.Len())
	}
}

func TestRunList(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	var out bytes.Buffer
	if err := runList(&out, ""); err != nil {
		t.Fatalf("runList failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	// Newest dated post first, the undated one last.
	if !strings.HasPrefix(lines[1], "server-rendered-html") || !strings.HasPrefix(lines[3], "hello") {
		t.Errorf("unexpected order:\n%s", out.String())
	}

	out.Reset()
	if err := runList(&out, "HTMX"); err != nil {
		t.Fatalf("runList with tag failed: %v", err)
	}
	if strings.Count(out.String(), "\n") != 2 {
		t.Errorf("tag filter output:\n%s", out.String())
	}
}

func TestRunShow(t *testing.T) {
	t.Setenv("CONTENT_DIR", "")
	var out bytes.Buffer
	if err := runShow(&out, "notes-on-go-errors"); err != nil {
		t.Fatalf("runShow failed: %v", err)
	}
	s := out.String()
	for _, want := range []string{
		"Title:    Notes on Go errors",
		"Subtitle: Wrapping, sentinels and when to stop",
		"Meta:     4 min read · Mar 2, 2024",
		"Profile:  /media/avatar.svg",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("show output missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "# Notes on Go errors") {
		t.Error("body should not repeat the title heading")
	}

	err := runShow(&out, "missing")
	if !errors.Is(err, blog.ErrNotFound) {
		t.Errorf("runShow(missing) error = %v, want ErrNotFound", err)
	}
}

func TestRunNewAndInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	if err := runInit(dir, ""); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	t.Setenv("CONTENT_DIR", dir)

	if err := runNew("Notes on Go generics!", []string{"go"}); err != nil {
		t.Fatalf("runNew failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "posts", "notes-on-go-generics.md")); err != nil {
		t.Fatalf("post not written: %v", err)
	}
	if err := runNew("Notes on Go generics!", nil); err == nil {
		t.Error("expected error when the post exists")
	}
	if err := runNew("!!!", nil); err == nil {
		t.Error("expected error for a title without slug characters")
	}

	var out bytes.Buffer
	if err := runList(&out, "go"); err != nil {
		t.Fatalf("runList failed: %v", err)
	}
	if !strings.Contains(out.String(), "notes-on-go-generics") {
		t.Errorf("new post not listed:\n%s", out.String())
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"my-site", "My Site"},
		{"mysite", "Mysite"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.expected {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
