// Package content loads the portfolio from markdown files with front matter.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/kyaoi/termfolio/internal/nav"
)

// ErrNoContent is returned when a directory holds none of the section files.
var ErrNoContent = errors.New("no portfolio content found")

//go:embed defaults/*.md
var defaultFS embed.FS

type experienceFile struct {
	Experiences []Experience `yaml:"experiences"`
}

type projectsFile struct {
	Projects []Project `yaml:"projects"`
}

type skillsFile struct {
	Categories []SkillCategory `yaml:"categories"`
}

// FileName returns the file that holds a section, e.g. "projects.md".
func FileName(id nav.Section) string {
	return id.String() + ".md"
}

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, err
	}
	return Load(sub, nil)
}

// LoadDir reads a content directory. Missing section files fall back to the
// embedded defaults.
func LoadDir(dir string) (*Portfolio, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", dir)
	}

	fsys := os.DirFS(dir)
	if !HasContent(fsys) {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoContent)
	}

	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		return nil, err
	}
	return Load(fsys, sub)
}

// HasContent reports whether fsys contains at least one section file.
func HasContent(fsys fs.FS) bool {
	for _, id := range nav.Sections() {
		if _, err := fs.Stat(fsys, FileName(id)); err == nil {
			return true
		}
	}
	return false
}

// IsContentFile reports whether name is one of the section file names.
func IsContentFile(name string) bool {
	lower := strings.ToLower(name)
	for _, id := range nav.Sections() {
		if lower == FileName(id) {
			return true
		}
	}
	return false
}

// Load parses every section file from fsys, reading from fallback when a file
// is absent there. fallback may be nil.
func Load(fsys, fallback fs.FS) (*Portfolio, error) {
	p := &Portfolio{Bodies: make(map[nav.Section]string)}

	var (
		exp      experienceFile
		projects projectsFile
		skills   skillsFile
	)
	targets := map[nav.Section]any{
		nav.Home:       &p.Profile,
		nav.About:      &p.About,
		nav.Experience: &exp,
		nav.Projects:   &projects,
		nav.Skills:     &skills,
		nav.Contact:    &p.Contact,
	}

	for _, id := range nav.Sections() {
		body, err := parseSection(fsys, fallback, FileName(id), targets[id])
		if err != nil {
			return nil, err
		}
		p.Bodies[id] = body
	}

	p.Experiences = exp.Experiences
	p.Projects = projects.Projects
	p.Skills = skills.Categories

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseSection(fsys, fallback fs.FS, name string, v any) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) && fallback != nil {
		data, err = fs.ReadFile(fallback, name)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}

	rest, err := frontmatter.Parse(bytes.NewReader(data), v)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", name, err)
	}
	return strings.TrimSpace(string(rest)), nil
}
