package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrNotFound is returned when no post exists for a slug.
	ErrNotFound = errors.New("blog: post not found")
	// ErrDuplicateSlug is returned when two source files map to one slug.
	ErrDuplicateSlug = errors.New("blog: duplicate slug")
	// ErrEmptySlug is returned for a post file whose name yields no slug.
	ErrEmptySlug = errors.New("blog: file name has no slug characters")
)

// Entry is the raw text of one post paired with its slug.
type Entry struct {
	Slug string
	Path string
	Raw  string
}

// Store holds the raw markdown of every post in a content set. The set is
// enumerated once when the store is built; nothing is re-read afterwards.
type Store struct {
	entries map[string]Entry
	slugs   []string
}

// NewStore reads every *.md file directly under dir in fsys. Sub-directories
// are ignored.
func NewStore(fsys fs.FS, dir string) (*Store, error) {
	dir = path.Clean(dir)
	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("blog: read content dir %s: %w", dir, err)
	}

	s := &Store{entries: make(map[string]Entry)}
	for _, f := range files {
		if f.IsDir() || !strings.EqualFold(path.Ext(f.Name()), ".md") {
			continue
		}
		p := path.Join(dir, f.Name())
		slug := SlugFromFilename(f.Name())
		if slug == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptySlug, p)
		}
		if prev, ok := s.entries[slug]; ok {
			return nil, fmt.Errorf("%w: %q from %s and %s", ErrDuplicateSlug, slug, prev.Path, p)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("blog: read %s: %w", p, err)
		}
		s.entries[slug] = Entry{Slug: slug, Path: p, Raw: string(data)}
		s.slugs = append(s.slugs, slug)
	}
	sort.Strings(s.slugs)
	return s, nil
}

// All returns every entry ordered by slug.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(s.slugs))
	for _, slug := range s.slugs {
		out = append(out, s.entries[slug])
	}
	return out, nil
}

// Get returns the entry for slug or ErrNotFound.
func (s *Store) Get(ctx context.Context, slug string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	e, ok := s.entries[slug]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// Len returns the number of posts in the store.
func (s *Store) Len() int {
	return len(s.slugs)
}

// SlugFromFilename derives a URL-safe slug from a post file name,
// e.g. "My First Post.md" -> "my-first-post".
func SlugFromFilename(name string) string {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	return Slugify(base)
}

// Slugify converts s to a lower-case, hyphen separated slug. Letters and
// digits of any script are kept.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r) && b.Len() > 0 && !prev:
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
