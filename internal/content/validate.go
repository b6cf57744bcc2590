package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

var (
	errEmpty       = errors.New("empty")
	errControlChar = errors.New("contains control characters")
)

// Validate checks that every record is made of well-formed strings.
func (p *Portfolio) Validate() error {
	var errs []error
	check := func(field, value string, required bool) {
		if err := checkText(value, required); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}
	checkURL := func(field, value string) {
		if value == "" {
			return
		}
		if _, err := url.Parse(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	check("home.name", p.Profile.Name, true)
	check("home.headline", p.Profile.Headline, false)
	check("home.summary", p.Profile.Summary, false)
	checkURL("home.links.github", p.Profile.Links.GitHub)
	checkURL("home.links.linkedin", p.Profile.Links.LinkedIn)
	check("home.links.email", p.Profile.Links.Email, false)
	check("home.links.phone", p.Profile.Links.Phone, false)

	for i, e := range p.About.Education {
		check(fmt.Sprintf("about.education[%d].school", i), e.School, true)
		check(fmt.Sprintf("about.education[%d].degree", i), e.Degree, false)
	}
	for i, a := range p.About.Achievements {
		check(fmt.Sprintf("about.achievements[%d]", i), a, true)
	}

	for i, e := range p.Experiences {
		check(fmt.Sprintf("experience[%d].company", i), e.Company, true)
		check(fmt.Sprintf("experience[%d].role", i), e.Role, true)
		check(fmt.Sprintf("experience[%d].period", i), e.Period, false)
		for j, a := range e.Achievements {
			check(fmt.Sprintf("experience[%d].achievements[%d]", i, j), a, true)
		}
		for j, t := range e.Tech {
			check(fmt.Sprintf("experience[%d].tech[%d]", i, j), t, true)
		}
	}

	for i, pr := range p.Projects {
		check(fmt.Sprintf("projects[%d].name", i), pr.Name, true)
		check(fmt.Sprintf("projects[%d].description", i), pr.Description, false)
		for j, t := range pr.Tech {
			check(fmt.Sprintf("projects[%d].tech[%d]", i, j), t, true)
		}
		checkURL(fmt.Sprintf("projects[%d].code", i), pr.Code)
		checkURL(fmt.Sprintf("projects[%d].demo", i), pr.Demo)
	}

	for i, c := range p.Skills {
		check(fmt.Sprintf("skills[%d].name", i), c.Name, true)
		for j, item := range c.Items {
			check(fmt.Sprintf("skills[%d].items[%d]", i, j), item, true)
		}
	}

	check("contact.message", p.Contact.Message, false)
	check("contact.footer", p.Contact.Footer, false)

	return errors.Join(errs...)
}

func checkText(value string, required bool) error {
	if strings.TrimSpace(value) == "" {
		if required {
			return errEmpty
		}
		return nil
	}
	for _, r := range value {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return errControlChar
		}
	}
	return nil
}
