package blog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
)

var (
	reImage    = regexp.MustCompile(`!\[[^\]]*\]\(\s*<?([^)\s>]+)>?[^)]*\)`)
	reLinkLine = regexp.MustCompile(`^(?:\[[^\]]*\]\([^)]*\)|\[[^\]]+\]:\s*\S+.*)$`)
	reReadTime = regexp.MustCompile(`(?i)\b\d+\s*(?:min|mins|minute|minutes)\.?\s+read\b`)
	reDate     = regexp.MustCompile(`(?i)\b(?:\d{4}-\d{2}-\d{2}|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}|` +
		`\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?,?\s+\d{4}|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?,?\s+\d{4})\b`)
)

// maxDateLineLen bounds the lines treated as a date byline so that prose
// mentioning a date is still eligible for the excerpt.
const maxDateLineLen = 80

// Parse builds a Post from the raw text of a post file. A leading YAML
// ("---") or TOML ("+++") block supplies explicit metadata; anything it
// leaves out is derived from the markdown body. Parse never fails: sparse
// or malformed input yields a post with empty optional fields.
func Parse(slug, raw string) Post {
	meta, body, ok := splitFrontMatter(raw)
	if !ok {
		return fromScan(slug, raw, scan(raw))
	}

	sc := scan(body)
	p := fromScan(slug, body, sc)

	if title := metaString(meta, "title"); title != "" {
		p.Title = title
		if !sc.titleFound {
			p.Excerpt, p.ReadTime, p.Date = sc.excerpt(0, 3)
		}
	}
	if v := metaString(meta, "subtitle"); v != "" {
		p.Subtitle = v
	}
	if v := metaString(meta, "description", "excerpt", "summary"); v != "" {
		p.Excerpt = Truncate(collapseSpace(v), ExcerptLimit)
	}
	if v := metaString(meta, "read_time", "readTime", "readtime", "reading_time"); v != "" {
		p.ReadTime = v
	}
	if v := metaString(meta, "date", "published"); v != "" {
		p.Date = v
	}
	if tags := metaStrings(meta, "tags"); len(tags) > 0 {
		p.Tags = normalizeTags(tags)
	}
	p.profileImage = metaString(meta, "profile_image", "profileImage", "author_image")
	p.tileImage = metaString(meta, "image", "cover", "tile_image")
	p.Published = parseDate(p.Date)
	return p
}

// splitFrontMatter separates an explicit metadata block from the body.
// ok is false when there is no block or the block cannot be decoded.
func splitFrontMatter(raw string) (map[string]any, string, bool) {
	meta := map[string]any{}
	body, err := frontmatter.MustParse(strings.NewReader(raw), &meta)
	if err != nil {
		return nil, "", false
	}
	return meta, string(body), true
}

func fromScan(slug, content string, sc scanResult) Post {
	p := Post{
		Slug:     slug,
		Title:    sc.title,
		Subtitle: sc.subtitle,
		Images:   sc.images,
		Content:  content,
		Link:     "/blog/" + slug + "/",
	}
	limit := 3
	if !sc.titleFound {
		limit = 1
	}
	p.Excerpt, p.ReadTime, p.Date = sc.excerpt(sc.bodyStart, limit)
	p.Published = parseDate(p.Date)
	return p
}

type scanResult struct {
	lines      []string
	code       []bool // line is a fence marker or inside a fenced block
	title      string
	titleFound bool
	subtitle   string
	bodyStart  int
	images     []string
}

// scan walks the text top to bottom. The title is the first "# " line; the
// subtitle is accepted only when the first non-blank line after the title is
// a "## " line.
func scan(text string) scanResult {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	sc := scanResult{lines: lines, code: make([]bool, len(lines))}

	inFence := false
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if isFence(line) {
			sc.code[i] = true
			inFence = !inFence
			continue
		}
		if inFence {
			sc.code[i] = true
			continue
		}
		for _, m := range reImage.FindAllStringSubmatch(line, -1) {
			sc.images = append(sc.images, m[1])
		}
	}

	for i, raw := range lines {
		if sc.code[i] {
			continue
		}
		line := strings.TrimSpace(raw)
		if headingLevel(line) != 1 {
			continue
		}
		sc.title = strings.TrimSpace(line[1:])
		sc.titleFound = true
		sc.bodyStart = i + 1

		for j := i + 1; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				continue
			}
			if !sc.code[j] && headingLevel(next) == 2 {
				sc.subtitle = strings.TrimSpace(next[2:])
				sc.bodyStart = j + 1
			}
			break
		}
		break
	}
	return sc
}

// excerpt collects up to limit prose lines starting at line start. Read-time
// and date bylines are skipped and returned separately.
func (sc scanResult) excerpt(start, limit int) (excerpt, readTime, date string) {
	var parts []string
	for i := start; i < len(sc.lines) && len(parts) < limit; i++ {
		if sc.code[i] {
			continue
		}
		line := strings.TrimSpace(sc.lines[i])
		if line == "" || headingLevel(line) > 0 || strings.HasPrefix(line, "![") ||
			reLinkLine.MatchString(line) || isRule(line) {
			continue
		}
		rt := reReadTime.FindString(line)
		d := ""
		if len(line) <= maxDateLineLen || rt != "" {
			d = reDate.FindString(line)
		}
		if rt != "" || d != "" {
			if readTime == "" {
				readTime = strings.TrimSpace(rt)
			}
			if date == "" {
				date = strings.TrimSpace(d)
			}
			continue
		}
		parts = append(parts, line)
	}
	return Truncate(strings.Join(parts, " "), ExcerptLimit), readTime, date
}

// headingLevel returns the level of an ATX heading line, or 0 when line is
// not a heading. The markers must be followed by a space or end the line.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if n < len(line) && line[n] != ' ' && line[n] != '\t' {
		return 0
	}
	return n
}

func isFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	c := line[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != c && line[i] != ' ' {
			return false
		}
	}
	return true
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func metaString(meta map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := meta[k]
		if !ok || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = val
		case time.Time:
			s = val.Format("2006-01-02")
		case fmt.Stringer:
			s = val.String()
		default:
			s = fmt.Sprint(val)
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func metaStrings(meta map[string]any, key string) []string {
	switch val := meta[key].(type) {
	case string:
		return strings.Split(val, ",")
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, v := range val {
			out = append(out, fmt.Sprint(v))
		}
		return out
	}
	return nil
}
