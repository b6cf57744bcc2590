package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
)

func defaultPortfolio(t *testing.T) *content.Portfolio {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	return p
}

func TestRenderBlocksAreContiguous(t *testing.T) {
	r, err := NewRenderer("", 60)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	page, err := r.Render(defaultPortfolio(t), 30)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(page.Blocks) != len(nav.Sections()) {
		t.Fatalf("expected %d blocks, got %d", len(nav.Sections()), len(page.Blocks))
	}
	prevEnd := 0
	for i, b := range page.Blocks {
		if b.Section != nav.Sections()[i] {
			t.Fatalf("block %d is %v, want %v", i, b.Section, nav.Sections()[i])
		}
		if b.Start != prevEnd {
			t.Fatalf("block %v starts at %d, want %d", b.Section, b.Start, prevEnd)
		}
		if b.End-b.Start < 30 {
			t.Fatalf("block %v is %d rows, want at least 30", b.Section, b.End-b.Start)
		}
		prevEnd = b.End
	}
	if page.Lines < prevEnd {
		t.Fatalf("page has %d lines, blocks end at %d", page.Lines, prevEnd)
	}
	if got := strings.Count(page.Content, "\n") + 1; got != page.Lines {
		t.Fatalf("line count mismatch: %d vs %d", got, page.Lines)
	}
}

func TestRenderContainsContent(t *testing.T) {
	r, err := NewRenderer("ascii", 80)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	page, err := r.Render(defaultPortfolio(t), 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	text := ansi.Strip(page.Content)
	for _, want := range []string{"Srikar Tadeparti", "Dell Technologies", "Prime Planner", "Backend & Systems", "Get In Touch", "Built with Go"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered page is missing %q", want)
		}
	}
}

func TestLocate(t *testing.T) {
	page := &Page{Blocks: []Block{
		{Section: nav.Home, Start: 0, End: 10},
		{Section: nav.About, Start: 10, End: 25},
	}}
	rect, ok := page.Locate(nav.About, 4, 20)
	if !ok {
		t.Fatalf("expected about to be located")
	}
	if rect.Top != 120 || rect.Bottom != 420 {
		t.Fatalf("unexpected rect %+v", rect)
	}
	home, _ := page.Locate(nav.Home, 4, 20)
	if home.Bottom != rect.Top {
		t.Fatalf("adjacent sections must share a boundary: %v vs %v", home.Bottom, rect.Top)
	}
	if _, ok := page.Locate(nav.Skills, 0, 20); ok {
		t.Fatalf("expected skills to be absent")
	}
	var empty *Page
	if _, ok := empty.Locate(nav.Home, 0, 20); ok {
		t.Fatalf("nil page must not locate sections")
	}
}

func TestNewRendererRejectsUnknownStyle(t *testing.T) {
	if _, err := NewRenderer("neon", 40); err == nil {
		t.Fatalf("expected error for unknown style")
	}
	if !ValidStyle(DefaultStyle) {
		t.Fatalf("default style must be valid")
	}
}

func TestMarkdownSections(t *testing.T) {
	p := &content.Portfolio{
		Profile:  content.Profile{Name: "Ada", Links: content.Links{Email: "ada@example.com"}},
		Projects: []content.Project{{Name: "Engine", Tech: []string{"Brass"}, Demo: "https://example.com"}},
		Bodies:   map[nav.Section]string{nav.Projects: "Extra notes."},
	}
	md := Markdown(p, nav.Projects)
	for _, want := range []string{"### Engine", "`Brass`", "[Demo](https://example.com)", "Extra notes."} {
		if !strings.Contains(md, want) {
			t.Errorf("projects markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "[Code]") {
		t.Errorf("projects markdown must omit an empty code link")
	}
	contact := Markdown(p, nav.Contact)
	if !strings.Contains(contact, "mailto:ada@example.com") {
		t.Errorf("contact markdown missing email:\n%s", contact)
	}
}
