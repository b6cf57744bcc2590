// Package render turns portfolio content into a laid-out terminal page.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
)

// DefaultStyle is the glamour style used when none is configured.
const DefaultStyle = styles.TokyoNightStyle

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Faint(true)

// Block is the row range [Start, End) occupied by a section.
type Block struct {
	Section nav.Section
	Start   int
	End     int
}

// Page is the rendered document and the position of each section in it.
type Page struct {
	Content string
	Lines   int
	Blocks  []Block
}

// ValidStyle reports whether name is a built-in glamour style.
func ValidStyle(name string) bool {
	_, ok := styles.DefaultStyles[name]
	return ok
}

// Renderer renders pages at a fixed wrap width.
type Renderer struct {
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewRenderer returns a renderer for the given glamour style and wrap width.
func NewRenderer(style string, width int) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}
	if !ValidStyle(style) {
		return nil, fmt.Errorf("unknown style %q", style)
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{style: style, width: width, tr: tr}, nil
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render lays out every section, each at least minRows tall, followed by the
// footer.
func (r *Renderer) Render(p *content.Portfolio, minRows int) (*Page, error) {
	var lines []string
	page := &Page{}
	for _, id := range nav.Sections() {
		out, err := r.tr.Render(Markdown(p, id))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", id, err)
		}
		sectionLines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		for len(sectionLines) < minRows {
			sectionLines = append(sectionLines, "")
		}
		start := len(lines)
		lines = append(lines, sectionLines...)
		page.Blocks = append(page.Blocks, Block{Section: id, Start: start, End: len(lines)})
	}
	if footer := strings.TrimSpace(p.Contact.Footer); footer != "" {
		line := footerStyle.Render(footer)
		if r.width > 0 {
			line = lipgloss.PlaceHorizontal(r.width, lipgloss.Center, line)
		}
		lines = append(lines, "", line)
	}
	page.Content = strings.Join(lines, "\n")
	page.Lines = len(lines)
	return page, nil
}

// Block returns the row range of a section.
func (pg *Page) Block(id nav.Section) (Block, bool) {
	if pg == nil {
		return Block{}, false
	}
	for _, b := range pg.Blocks {
		if b.Section == id {
			return b, true
		}
	}
	return Block{}, false
}

// Locate converts a section's rows into viewport units given the scroll
// offset (in rows) and the height of one row (in units). Adjacent sections
// share their boundary exactly.
func (pg *Page) Locate(id nav.Section, offsetRows int, rowHeight float64) (nav.Rect, bool) {
	b, ok := pg.Block(id)
	if !ok {
		return nav.Rect{}, false
	}
	return nav.Rect{
		Top:    float64(b.Start-offsetRows) * rowHeight,
		Bottom: float64(b.End-offsetRows) * rowHeight,
	}, true
}
