// Package profile loads the data behind the portfolio home page: hero,
// experience, skills, projects and testimonials.
package profile

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is the content of profile.yaml.
type Profile struct {
	Name         string        `yaml:"name"`
	Role         string        `yaml:"role"`
	Tagline      string        `yaml:"tagline"`
	Avatar       string        `yaml:"avatar"`
	Location     string        `yaml:"location"`
	Links        []Link        `yaml:"links"`
	Experience   []Job         `yaml:"experience"`
	Skills       []SkillGroup  `yaml:"skills"`
	Projects     []Project     `yaml:"projects"`
	Testimonials []Testimonial `yaml:"testimonials"`
	GitHub       string        `yaml:"github"` // username for the activity link
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Job struct {
	Title   string   `yaml:"title"`
	Company string   `yaml:"company"`
	Start   string   `yaml:"start"`
	End     string   `yaml:"end"`
	Logo    string   `yaml:"logo"`
	Points  []string `yaml:"points"`
}

// Period formats the job's date range, "Present" standing in for a missing
// end date.
func (j Job) Period() string {
	end := j.End
	if end == "" {
		end = "Present"
	}
	if j.Start == "" {
		return end
	}
	return j.Start + " – " + end
}

type SkillGroup struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	URL         string   `yaml:"url"`
	Source      string   `yaml:"source"`
	Stack       []string `yaml:"stack"`
}

type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Avatar string `yaml:"avatar"`
}

// Load reads and validates the profile at name in fsys. Unknown keys are
// rejected so typos surface at startup.
func Load(fsys fs.FS, name string) (*Profile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: decode: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("profile: name is required")
	}
	return &p, nil
}
