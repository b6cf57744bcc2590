package render

import (
	"fmt"
	"strings"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
)

// Markdown builds the markdown source of one section.
func Markdown(p *content.Portfolio, id nav.Section) string {
	var b strings.Builder
	switch id {
	case nav.Home:
		writeHome(&b, p)
	case nav.About:
		writeAbout(&b, p)
	case nav.Experience:
		writeExperience(&b, p)
	case nav.Projects:
		writeProjects(&b, p)
	case nav.Skills:
		writeSkills(&b, p)
	case nav.Contact:
		writeContact(&b, p)
	}
	if body := p.Body(id); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

func writeHome(b *strings.Builder, p *content.Portfolio) {
	prof := p.Profile
	fmt.Fprintf(b, "# %s\n\n", prof.Name)
	if prof.Headline != "" {
		fmt.Fprintf(b, "## %s\n\n", prof.Headline)
	}
	if prof.Summary != "" {
		fmt.Fprintf(b, "%s\n\n", prof.Summary)
	}
	if links := linkLine(prof.Links); links != "" {
		fmt.Fprintf(b, "%s\n\n", links)
	}
	b.WriteString("*Press enter to read more* ↓\n")
}

func writeAbout(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## About Me\n\n")
	if len(p.About.Education) > 0 {
		b.WriteString("### Education\n\n")
		for _, e := range p.About.Education {
			fmt.Fprintf(b, "- **%s**", e.School)
			if line := joinNonEmpty(" | ", e.Degree, e.Detail); line != "" {
				fmt.Fprintf(b, "  \n  %s", line)
			}
			if e.Period != "" {
				fmt.Fprintf(b, "  \n  *%s*", e.Period)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(p.About.Achievements) > 0 {
		b.WriteString("### Achievements\n\n")
		for _, a := range p.About.Achievements {
			fmt.Fprintf(b, "- %s\n", a)
		}
	}
}

func writeExperience(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Experience\n\n")
	for _, e := range p.Experiences {
		fmt.Fprintf(b, "### %s\n\n", e.Company)
		fmt.Fprintf(b, "**%s**", e.Role)
		if e.Period != "" {
			fmt.Fprintf(b, " · *%s*", e.Period)
		}
		b.WriteString("\n\n")
		for _, a := range e.Achievements {
			fmt.Fprintf(b, "- %s\n", a)
		}
		if len(e.Tech) > 0 {
			fmt.Fprintf(b, "\n%s\n", techLine(e.Tech))
		}
		b.WriteString("\n")
	}
}

func writeProjects(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Projects\n\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(b, "### %s\n\n", pr.Name)
		if pr.Description != "" {
			fmt.Fprintf(b, "%s\n\n", pr.Description)
		}
		if len(pr.Tech) > 0 {
			fmt.Fprintf(b, "%s\n\n", techLine(pr.Tech))
		}
		var links []string
		if pr.Code != "" {
			links = append(links, fmt.Sprintf("[Code](%s)", pr.Code))
		}
		if pr.Demo != "" {
			links = append(links, fmt.Sprintf("[Demo](%s)", pr.Demo))
		}
		if len(links) > 0 {
			fmt.Fprintf(b, "%s\n\n", strings.Join(links, " · "))
		}
	}
}

func writeSkills(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Technical Skills\n\n")
	for _, c := range p.Skills {
		fmt.Fprintf(b, "### %s\n\n%s\n\n", c.Name, techLine(c.Items))
	}
}

func writeContact(b *strings.Builder, p *content.Portfolio) {
	b.WriteString("## Get In Touch\n\n")
	if p.Contact.Message != "" {
		fmt.Fprintf(b, "%s\n\n", p.Contact.Message)
	}
	links := p.Profile.Links
	if links.Email != "" {
		fmt.Fprintf(b, "- Email: [%s](mailto:%s)\n", links.Email, links.Email)
	}
	if links.Phone != "" {
		fmt.Fprintf(b, "- Phone: %s\n", links.Phone)
	}
	if links.GitHub != "" {
		fmt.Fprintf(b, "- GitHub: %s\n", links.GitHub)
	}
	if links.LinkedIn != "" {
		fmt.Fprintf(b, "- LinkedIn: %s\n", links.LinkedIn)
	}
}

func linkLine(l content.Links) string {
	var parts []string
	if l.GitHub != "" {
		parts = append(parts, fmt.Sprintf("[GitHub](%s)", l.GitHub))
	}
	if l.LinkedIn != "" {
		parts = append(parts, fmt.Sprintf("[LinkedIn](%s)", l.LinkedIn))
	}
	if l.Email != "" {
		parts = append(parts, fmt.Sprintf("[Email](mailto:%s)", l.Email))
	}
	return strings.Join(parts, " · ")
}

func techLine(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "`"+item+"`")
	}
	return strings.Join(quoted, " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
