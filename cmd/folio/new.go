package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eringen/folio"
	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/scaffold"
)

// runNew writes a post skeleton for title into CONTENT_DIR/posts.
func runNew(title string, tags []string) error {
	slug := blog.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q has no usable characters for a slug", title)
	}
	dir := filepath.Join(folio.EnvOr("CONTENT_DIR", "content"), "posts")
	outPath := filepath.Join(dir, slug+".md")
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("post %q already exists", outPath)
	}

	data, err := scaffold.RenderPost(scaffold.PostData{
		Title: title,
		Date:  time.Now().Format("2006-01-02"),
		Tags:  tags,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("  created %s\n", outPath)
	return nil
}

// runInit creates a starter content directory.
func runInit(dir, name string) error {
	if name == "" {
		name = toTitle(filepath.Base(dir))
	}
	fmt.Printf("Creating new folio content directory: %s\n\n", dir)
	created, err := scaffold.WriteSite(dir, scaffold.NewSiteData(name, time.Now()))
	for _, p := range created {
		fmt.Printf("  created %s\n", p)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cd %s && cp .env.example .env\n", dir)
	fmt.Println("  folio serve")
	fmt.Println()
	fmt.Println("Edit profile.yaml and add markdown files under posts/.")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-site" -> "My Site", "mysite" -> "Mysite"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
