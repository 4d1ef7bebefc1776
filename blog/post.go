// Package blog loads markdown posts from a static content set, derives their
// metadata and serves them in a stable order.
package blog

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ExcerptLimit is the number of runes kept in an excerpt before it is cut
// and suffixed with an ellipsis.
const ExcerptLimit = 120

// Post is a single blog entry. Posts are built once from raw text and never
// modified afterwards.
type Post struct {
	Slug      string
	Title     string
	Subtitle  string
	Excerpt   string
	Date      string    // as written by the author
	Published time.Time // zero when Date is empty or unparseable
	ReadTime  string
	Tags      []string
	Images    []string
	Content   string
	Link      string

	profileImage string
	tileImage    string
}

// ProfileImage returns the author image shown in the byline.
func (p Post) ProfileImage() string {
	if p.profileImage != "" {
		return p.profileImage
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// TileImage returns the image shown on the post's card. It is the second
// body image, or the first one when the body has a single image.
func (p Post) TileImage() string {
	if p.tileImage != "" {
		return p.tileImage
	}
	switch {
	case len(p.Images) > 1:
		return p.Images[1]
	case len(p.Images) == 1:
		return p.Images[0]
	}
	return ""
}

// HasDate reports whether the post carries a date that could be parsed.
func (p Post) HasDate() bool {
	return !p.Published.IsZero()
}

// MetaLine joins read time and date with a middle dot, dropping the
// separator when either is missing.
func (p Post) MetaLine() string {
	switch {
	case p.ReadTime != "" && p.Date != "":
		return p.ReadTime + " · " + p.Date
	case p.ReadTime != "":
		return p.ReadTime
	}
	return p.Date
}

// HasTag reports whether the post is tagged with tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	tag = normalizeTag(tag)
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Truncate cuts s to at most limit runes and appends an ellipsis when
// anything was removed.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// normalizeTags lower-cases, trims and de-duplicates tags, keeping the order
// of first appearance.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = normalizeTag(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
