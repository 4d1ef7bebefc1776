package blog

import "strings"

// Body returns the markdown to display on the post page. The title heading,
// the subtitle heading and the profile image are rendered separately by the
// page, so the first occurrence of each is removed. Later lines that happen
// to match are kept.
func (p Post) Body() string {
	lines := strings.Split(strings.ReplaceAll(p.Content, "\r\n", "\n"), "\n")
	profile := p.ProfileImage()

	titleDone := p.Title == ""
	subtitleDone := p.Subtitle == ""
	imageDone := profile == ""

	out := make([]string, 0, len(lines))
	inFence := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if isFence(line) {
			inFence = !inFence
			out = append(out, raw)
			continue
		}
		if inFence {
			out = append(out, raw)
			continue
		}
		if !titleDone && headingLevel(line) == 1 && strings.TrimSpace(line[1:]) == p.Title {
			titleDone = true
			continue
		}
		if !subtitleDone && headingLevel(line) == 2 && strings.TrimSpace(line[2:]) == p.Subtitle {
			subtitleDone = true
			continue
		}
		if !imageDone {
			if rest, ok := removeImage(raw, profile); ok {
				imageDone = true
				if strings.TrimSpace(rest) == "" {
					continue
				}
				raw = rest
			}
		}
		out = append(out, raw)
	}
	return strings.TrimLeft(strings.Join(out, "\n"), "\n")
}

// removeImage deletes the first image reference pointing at src from line.
func removeImage(line, src string) (string, bool) {
	for _, loc := range reImage.FindAllStringSubmatchIndex(line, -1) {
		if line[loc[2]:loc[3]] != src {
			continue
		}
		return line[:loc[0]] + line[loc[1]:], true
	}
	return line, false
}
