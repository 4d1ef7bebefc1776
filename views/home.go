package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/folio/blog"
	"github.com/eringen/folio/profile"
)

// Home is the portfolio landing page. recent is shown as a short blog teaser
// below the profile sections.
func Home(cfg SiteConfig, p *profile.Profile, recent []blog.Post) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		JSONLD:      WebsiteJsonLD(cfg),
	}
	return Layout(cfg, meta, component(func(ctx context.Context, h *html) {
		if p != nil {
			writeHero(h, p)
			writeExperience(h, p.Experience)
			writeSkills(h, p.Skills)
			writeProjects(h, p.Projects)
			writeTestimonials(h, p.Testimonials)
		}
		if len(recent) > 0 {
			h.raw(`<section class="blog" id="recent"><div class="blogHeader"><h2>Recent writing</h2></div>`)
			h.raw(`<div class="blogGrid">`)
			for _, post := range recent {
				h.render(ctx, PostCard(post))
			}
			h.raw(`</div><a class="readMoreBtn" href="/blog/">All posts</a></section>`)
		}
	}))
}

func writeHero(h *html, p *profile.Profile) {
	h.raw(`<section class="hero" id="hero">`)
	if p.Avatar != "" {
		h.raw(`<img class="heroAvatar"`)
		h.url("src", p.Avatar)
		h.attr("alt", p.Name)
		h.raw("/>")
	}
	h.elem("h1", "heroName", p.Name)
	h.elem("p", "heroRole", p.Role)
	h.elem("p", "heroTagline", p.Tagline)
	h.elem("p", "heroLocation", p.Location)
	if len(p.Links) > 0 || p.GitHub != "" {
		h.raw(`<ul class="heroLinks">`)
		for _, l := range p.Links {
			h.raw("<li><a")
			h.url("href", l.URL)
			h.raw(` rel="me noopener">`)
			h.text(l.Label)
			h.raw("</a></li>")
		}
		if p.GitHub != "" {
			h.raw("<li><a")
			h.url("href", "https://github.com/"+p.GitHub)
			h.raw(` rel="me noopener">GitHub activity</a></li>`)
		}
		h.raw("</ul>")
	}
	h.raw("</section>")
}

func writeExperience(h *html, jobs []profile.Job) {
	if len(jobs) == 0 {
		return
	}
	h.raw(`<section class="experience" id="experience"><h2>Experience</h2><ol class="timeline">`)
	for _, j := range jobs {
		h.raw(`<li class="job">`)
		if j.Logo != "" {
			h.raw(`<img class="jobLogo" loading="lazy"`)
			h.url("src", j.Logo)
			h.attr("alt", j.Company)
			h.raw("/>")
		}
		h.elem("h3", "jobTitle", j.Title)
		h.elem("p", "jobCompany", j.Company)
		h.elem("p", "jobPeriod", j.Period())
		if len(j.Points) > 0 {
			h.raw("<ul>")
			for _, pt := range j.Points {
				h.elem("li", "", pt)
			}
			h.raw("</ul>")
		}
		h.raw("</li>")
	}
	h.raw("</ol></section>")
}

func writeSkills(h *html, groups []profile.SkillGroup) {
	if len(groups) == 0 {
		return
	}
	h.raw(`<section class="skills" id="skills"><h2>Skills</h2>`)
	for _, g := range groups {
		h.raw(`<div class="skillGroup">`)
		h.elem("h3", "", g.Name)
		h.raw(`<ul class="skillList">`)
		for _, s := range g.Skills {
			h.elem("li", "skill", s)
		}
		h.raw("</ul></div>")
	}
	h.raw("</section>")
}

func writeProjects(h *html, projects []profile.Project) {
	if len(projects) == 0 {
		return
	}
	h.raw(`<section class="projects" id="projects"><h2>Projects</h2><div class="projectGrid">`)
	for _, pr := range projects {
		h.raw(`<article class="projectCard">`)
		if pr.Image != "" {
			h.raw(`<img loading="lazy"`)
			h.url("src", TileSrc(pr.Image))
			h.attr("alt", pr.Title)
			h.raw("/>")
		}
		h.elem("h3", "", pr.Title)
		h.elem("p", "", pr.Description)
		if len(pr.Stack) > 0 {
			h.raw(`<ul class="stack">`)
			for _, s := range pr.Stack {
				h.elem("li", "", s)
			}
			h.raw("</ul>")
		}
		if pr.URL != "" {
			h.raw("<a")
			h.url("href", pr.URL)
			h.raw(` rel="noopener">Visit</a>`)
		}
		if pr.Source != "" {
			h.raw("<a")
			h.url("href", pr.Source)
			h.raw(` rel="noopener">Source</a>`)
		}
		h.raw("</article>")
	}
	h.raw("</div></section>")
}

func writeTestimonials(h *html, ts []profile.Testimonial) {
	if len(ts) == 0 {
		return
	}
	h.raw(`<section class="testimonials" id="testimonials"><h2>Testimonials</h2>`)
	for _, t := range ts {
		h.raw(`<figure class="testimonial"><blockquote>`)
		h.text(t.Quote)
		h.raw("</blockquote><figcaption>")
		h.text(t.Author)
		if t.Role != "" {
			h.raw(", ")
			h.text(t.Role)
		}
		h.raw("</figcaption></figure>")
	}
	h.raw("</section>")
}
