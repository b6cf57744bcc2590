package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned when a name does not match any section.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one content region of the page.
type Section int

const (
	Home Section = iota
	About
	Experience
	Projects
	Skills
	Contact
)

var sectionNames = [...]string{"home", "about", "experience", "projects", "skills", "contact"}

var sectionLabels = [...]string{"Home", "About", "Experience", "Projects", "Skills", "Contact"}

// Sections returns every section in canonical page order.
func Sections() []Section {
	return []Section{Home, About, Experience, Projects, Skills, Contact}
}

// Valid reports whether s belongs to the fixed section set.
func (s Section) Valid() bool {
	return s >= Home && s <= Contact
}

// String returns the lower-case identifier used for anchors and file names.
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// Label returns the navigation bar label.
func (s Section) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return sectionLabels[s]
}

// ParseSection maps an identifier such as "projects" to its Section.
func ParseSection(name string) (Section, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range sectionNames {
		if n == key {
			return Section(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Rect is the vertical extent of a region in viewport coordinates.
type Rect struct {
	Top    float64
	Bottom float64
}

// Contains reports whether the horizontal line at y passes through the region.
// Both edges are inclusive.
func (r Rect) Contains(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}
