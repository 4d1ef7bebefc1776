// Package scaffold writes new content for the folio CLI: a starter content
// directory and new post skeletons.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// SiteData holds the template variables for a new content directory.
type SiteData struct {
	Name    string
	Date    string
	Initial string
}

// NewSiteData fills SiteData for a site owned by name.
func NewSiteData(name string, now time.Time) SiteData {
	initial := "?"
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		initial = string(unicode.ToUpper(r))
	}
	return SiteData{Name: name, Date: now.Format("2006-01-02"), Initial: initial}
}

// PostData holds the template variables for a new post.
type PostData struct {
	Title string
	Date  string
	Tags  []string
}

// TagList renders Tags as a YAML flow sequence body.
func (d PostData) TagList() string {
	return strings.Join(d.Tags, ", ")
}

// WriteSite renders the site templates into dir, which must not exist yet.
// It returns the paths it created.
func WriteSite(dir string, data SiteData) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("scaffold: directory %q already exists", dir)
	}

	root := "templates/site"
	var created []string
	err := fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		outPath := filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(rel, ".tmpl")))

		// Rename dotenv to .env.example.
		if filepath.Base(outPath) == "dotenv" {
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		}

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := renderTemplate(p, data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return fmt.Errorf("scaffold: write %s: %w", outPath, err)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return created, err
	}
	return created, nil
}

// RenderPost returns the markdown skeleton of a new post.
func RenderPost(data PostData) ([]byte, error) {
	return renderTemplate("templates/post/post.md.tmpl", data)
}

func renderTemplate(name string, data any) ([]byte, error) {
	content, err := Templates.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("scaffold: read %s: %w", name, err)
	}
	tmpl, err := template.New(path.Base(name)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("scaffold: parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("scaffold: execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
