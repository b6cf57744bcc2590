package content

import "github.com/kyaoi/termfolio/internal/nav"

// Links are the owner's public handles.
type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
}

// Profile is the hero block of the home section.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Summary  string `yaml:"summary"`
	Links    Links  `yaml:"links"`
}

// Education is one degree listed in the about section.
type Education struct {
	School string `yaml:"school"`
	Degree string `yaml:"degree"`
	Detail string `yaml:"detail"`
	Period string `yaml:"period"`
}

// About holds the biography extras shown next to the about text.
type About struct {
	Education    []Education `yaml:"education"`
	Achievements []string    `yaml:"achievements"`
}

// Experience is one job.
type Experience struct {
	Company      string   `yaml:"company"`
	Role         string   `yaml:"role"`
	Period       string   `yaml:"period"`
	Achievements []string `yaml:"achievements"`
	Tech         []string `yaml:"tech"`
}

// Project is one portfolio project.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Code        string   `yaml:"code"`
	Demo        string   `yaml:"demo"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Contact is the closing call to action.
type Contact struct {
	Message string `yaml:"message"`
	Footer  string `yaml:"footer"`
}

// Portfolio is the complete, read-only page content.
type Portfolio struct {
	Profile     Profile
	About       About
	Experiences []Experience
	Projects    []Project
	Skills      []SkillCategory
	Contact     Contact

	// Bodies holds the free markdown written below each file's front matter.
	Bodies map[nav.Section]string
}

// Body returns the free markdown of a section, or "".
func (p *Portfolio) Body(id nav.Section) string {
	if p == nil || p.Bodies == nil {
		return ""
	}
	return p.Bodies[id]
}
