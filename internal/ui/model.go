package ui

import (
	"io"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/nav"
	"github.com/kyaoi/termfolio/internal/render"
	"github.com/kyaoi/termfolio/internal/scroll"
)

const (
	statusBarHeight  = 1
	defaultRowHeight = 20
)

var (
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// Model implements the Bubble Tea program for the portfolio page.
type Model struct {
	contentVP  viewport.Model
	renderer   *render.Renderer
	page       *render.Page
	portfolio  *content.Portfolio
	style      string
	rowHeight  float64
	contentDir string
	logger     *log.Logger

	navigator *nav.Navigator
	unmount   func()
	listeners nav.Listeners
	lastYOff  int
	animator  *scroll.Animator

	showHelp   bool
	pendingKey string
	ready      bool
	width      int
	height     int
	err        error

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	watcher   *fsnotify.Watcher
	watchDir  string
	watchChan chan tea.Msg
}

type scrollFrameMsg struct {
	gen int
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the page model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)

	rowHeight := state.RowHeight
	if rowHeight <= 0 {
		rowHeight = defaultRowHeight
	}
	logger := state.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	m := &Model{
		contentVP:   contentVP,
		portfolio:   state.Portfolio,
		style:       state.Style,
		rowHeight:   rowHeight,
		contentDir:  state.ContentDir,
		logger:      logger,
		animator:    scroll.NewAnimator(state.ScrollFPS, orDefault(state.ScrollFrequency, scroll.DefaultFrequency), orDefault(state.ScrollDamping, scroll.DefaultDamping)),
		searchIndex: -1,
	}

	opts := []nav.Option{nav.WithOnChange(func(s nav.State) {
		m.logger.Printf("nav: active=%s scrolled=%t", s.Active, s.Scrolled)
	})}
	opts = append(opts,
		nav.WithScrolledThreshold(state.ScrolledThreshold),
		nav.WithProbeLine(state.ProbeLine),
	)
	m.navigator = nav.New(opts...)

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	return m
}

// Init implements tea.Model. It mounts the navigator on the page viewport and
// starts watching the content directory.
func (m *Model) Init() tea.Cmd {
	if !m.navigator.Mounted() {
		m.unmount = m.navigator.Mount(pageViewport{m: m})
	}
	if m.contentDir != "" {
		return m.startWatching(m.contentDir)
	}
	return nil
}

// Close releases the scroll subscription and the file watcher. It is safe to
// call more than once.
func (m *Model) Close() {
	if m.unmount != nil {
		m.unmount()
		m.unmount = nil
	}
	m.animator.Stop()
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// NavState returns the navigation state.
func (m *Model) NavState() nav.State {
	return m.navigator.State()
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	if m.showHelp {
		helpContent := strings.Join([]string{
			"Help (? to close / Esc)",
			"j / k, ↑ / ↓      : scroll",
			"Ctrl+d / Ctrl+u   : half page down / up",
			"gg / G            : top / bottom",
			"1-6               : jump to section",
			"Tab / Shift+Tab   : next / previous section",
			"Enter             : continue reading (home)",
			"click a label     : jump to section",
			"/                 : search",
			"n / N             : next / previous match",
			"q / Ctrl+c        : quit",
		}, "\n")
		helpOverlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	bar, _ := layoutNavBar(m.width, m.brand(), m.navigator.State())
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.contentVP.View(), m.statusLine())
}

func (m *Model) statusLine() string {
	var line string
	switch {
	case m.searchActive:
		line = m.searchInput.View()
	case m.err != nil:
		line = errorStyle.Render(m.err.Error())
	case m.searchQuery != "":
		line = m.searchStatusLine()
	default:
		line = "? help · 1-6 sections · / search · q quit"
	}
	style := statusBarStyle
	if m.width > 0 {
		style = style.Width(m.width).MaxWidth(m.width)
	}
	return style.Render(line)
}

// Update implements tea.Model. Every change of the viewport offset is
// delivered to scroll listeners once the message has been handled.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.emitScroll()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case scrollFrameMsg:
		return m.handleScrollFrame(msg)
	case fileEventMsg:
		return m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		m.logger.Printf("watch: %v", msg.err)
		return m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.searchActive {
		switch msg.Type {
		case tea.KeyEnter:
			query := strings.TrimSpace(m.searchInput.Value())
			m.exitSearchMode()
			if query == "" {
				m.clearSearch()
				return nil
			}
			m.performSearch(query, true)
			return nil
		case tea.KeyEsc, tea.KeyCtrlC:
			m.exitSearchMode()
			return nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}

	key := msg.String()
	if key != "g" {
		m.pendingKey = ""
	}

	if m.showHelp {
		m.pendingKey = ""
		switch key {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return nil
	}

	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case "?":
		m.showHelp = true
		m.pendingKey = ""
		return nil
	case "/":
		return m.enterSearchMode()
	case "n":
		if len(m.searchMatches) > 0 {
			m.nextSearchMatch()
		}
		return nil
	case "N":
		if len(m.searchMatches) > 0 {
			m.previousSearchMatch()
		}
		return nil
	case "1", "2", "3", "4", "5", "6":
		return m.scrollToSection(nav.Section(key[0] - '1'))
	case "tab":
		return m.scrollToSection(m.relativeSection(1))
	case "shift+tab":
		return m.scrollToSection(m.relativeSection(-1))
	case "enter", " ":
		if m.navigator.State().Active == nav.Home {
			return m.scrollToSection(nav.About)
		}
		return nil
	}

	if m.handleContentKey(key) {
		m.animator.Stop()
		return nil
	}

	before := m.contentVP.YOffset
	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	if m.contentVP.YOffset != before {
		m.animator.Stop()
	}
	return cmd
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j", "down":
		m.contentVP.ScrollDown(1)
	case "k", "up":
		m.contentVP.ScrollUp(1)
	case "ctrl+d":
		m.contentVP.HalfPageDown()
	case "ctrl+u":
		m.contentVP.HalfPageUp()
	case "g":
		if m.pendingKey == "g" {
			m.contentVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.pendingKey = ""
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp || !m.ready {
		return nil
	}
	if msg.Y < navBarHeight {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		_, hits := layoutNavBar(m.width, m.brand(), m.navigator.State())
		if id, ok := hitSection(hits, msg.X); ok {
			return m.scrollToSection(id)
		}
		return nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		m.animator.Stop()
	}
	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return cmd
}

// scrollToSection starts a smooth scroll through the navigator and schedules
// the first animation frame.
func (m *Model) scrollToSection(id nav.Section) tea.Cmd {
	gen := m.animator.Generation()
	m.navigator.ScrollToSection(id)
	if m.animator.Running() && m.animator.Generation() != gen {
		return m.nextFrame()
	}
	return nil
}

func (m *Model) relativeSection(delta int) nav.Section {
	sections := nav.Sections()
	i := int(m.navigator.State().Active) + delta
	return sections[clamp(i, 0, len(sections)-1)]
}

// smoothScrollTo animates the viewport towards offset, in units.
func (m *Model) smoothScrollTo(offset float64) {
	target := float64(clamp(int(math.Round(offset/m.rowHeight)), 0, m.maxYOffset())) * m.rowHeight
	m.animator.Start(m.scrollOffset(), target)
}

func (m *Model) nextFrame() tea.Cmd {
	gen := m.animator.Generation()
	return tea.Tick(m.animator.Interval(), func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}

func (m *Model) handleScrollFrame(msg scrollFrameMsg) tea.Cmd {
	if msg.gen != m.animator.Generation() || !m.animator.Running() {
		return nil
	}
	pos, done := m.animator.Step()
	m.contentVP.SetYOffset(clamp(int(math.Round(pos/m.rowHeight)), 0, m.maxYOffset()))
	if done {
		return nil
	}
	return m.nextFrame()
}

func (m *Model) scrollOffset() float64 {
	return float64(m.contentVP.YOffset) * m.rowHeight
}

func (m *Model) maxYOffset() int {
	if m.page == nil {
		return 0
	}
	return max(m.page.Lines-m.contentVP.Height, 0)
}

func (m *Model) emitScroll() {
	if m.contentVP.YOffset == m.lastYOff {
		return
	}
	m.lastYOff = m.contentVP.YOffset
	m.listeners.Emit()
}

func (m *Model) brand() string {
	if m.portfolio == nil {
		return ""
	}
	return m.portfolio.Profile.Name
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= navBarHeight+statusBarHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	m.contentVP.Width = width
	m.contentVP.Height = max(height-navBarHeight-statusBarHeight, 1)

	wrapWidth := m.contentVP.Width - m.contentVP.Style.GetHorizontalFrameSize()
	if wrapWidth < 0 {
		wrapWidth = 0
	}

	if m.renderer == nil || m.renderer.Width() != wrapWidth {
		renderer, err := render.NewRenderer(m.style, wrapWidth)
		if err != nil {
			m.err = err
			return
		}
		m.renderer = renderer
	}
	m.renderPage()
}

func (m *Model) renderPage() {
	if m.renderer == nil || m.portfolio == nil {
		return
	}
	page, err := m.renderer.Render(m.portfolio, m.contentVP.Height)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	offset := m.contentVP.YOffset
	m.page = page
	m.contentVP.SetContent(page.Content)
	m.contentVP.SetYOffset(clamp(offset, 0, m.maxYOffset()))
	m.onContentChanged()
}

// pageViewport exposes the model's viewport to the navigator.
type pageViewport struct {
	m *Model
}

func (v pageViewport) ScrollOffset() float64 {
	return v.m.scrollOffset()
}

func (v pageViewport) Locate(id nav.Section) (nav.Rect, bool) {
	return v.m.page.Locate(id, v.m.contentVP.YOffset, v.m.rowHeight)
}

func (v pageViewport) AddScrollListener(fn func()) func() {
	return v.m.listeners.Add(fn)
}

func (v pageViewport) SmoothScrollTo(offset float64) {
	v.m.smoothScrollTo(offset)
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
