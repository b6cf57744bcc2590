package nav

// Default thresholds, in page units.
const (
	DefaultScrolledThreshold = 50
	DefaultProbeLine         = 100
)

// Viewport is the scrolling surface the navigator observes and drives.
type Viewport interface {
	// ScrollOffset returns the vertical scroll offset in units.
	ScrollOffset() float64
	// Locate returns the on-screen extent of a section. ok is false when the
	// region is not rendered.
	Locate(id Section) (rect Rect, ok bool)
	// AddScrollListener registers fn for scroll events.
	AddScrollListener(fn func()) (remove func())
	// SmoothScrollTo animates the viewport towards offset.
	SmoothScrollTo(offset float64)
}

// State is the navigation UI state.
type State struct {
	Active   Section
	Scrolled bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithScrolledThreshold sets the offset above which the bar counts as scrolled.
func WithScrolledThreshold(units float64) Option {
	return func(n *Navigator) { n.threshold = units }
}

// WithProbeLine sets the distance of the probe line from the viewport top.
func WithProbeLine(units float64) Option {
	return func(n *Navigator) { n.probe = units }
}

// WithOnChange registers a callback invoked after every state change.
func WithOnChange(fn func(State)) Option {
	return func(n *Navigator) { n.onChange = fn }
}

// Navigator tracks which section is in view and scrolls to sections on request.
type Navigator struct {
	threshold float64
	probe     float64
	onChange  func(State)

	state  State
	vp     Viewport
	remove func()
	mounts int
}

// New returns a navigator in its initial state: home active, not scrolled.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		threshold: DefaultScrolledThreshold,
		probe:     DefaultProbeLine,
		state:     State{Active: Home},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns the current navigation state.
func (n *Navigator) State() State {
	return n.state
}

// Mount subscribes the navigator to vp's scroll events. The returned function
// releases the subscription; after it runs, scroll events are ignored.
func (n *Navigator) Mount(vp Viewport) (unmount func()) {
	n.Unmount()
	if vp == nil {
		return func() {}
	}
	n.mounts++
	gen := n.mounts
	n.vp = vp
	remove := vp.AddScrollListener(n.OnScroll)
	n.remove = remove
	return func() {
		if n.mounts == gen && n.vp != nil {
			n.Unmount()
			return
		}
		remove()
	}
}

// Unmount releases the current subscription, if any.
func (n *Navigator) Unmount() {
	if n.remove != nil {
		n.remove()
	}
	n.remove = nil
	n.vp = nil
}

// Mounted reports whether the navigator is attached to a viewport.
func (n *Navigator) Mounted() bool {
	return n.vp != nil
}

// OnScroll recomputes the scrolled flag and the active section.
func (n *Navigator) OnScroll() {
	if n.vp == nil {
		return
	}
	next := n.state
	next.Scrolled = n.vp.ScrollOffset() > n.threshold
	if id, ok := ActiveAt(n.vp, n.probe); ok {
		next.Active = id
	}
	if next == n.state {
		return
	}
	n.state = next
	if n.onChange != nil {
		n.onChange(next)
	}
}

// ScrollToSection smooth-scrolls so that the section's top edge meets the
// viewport top. Sections that are not rendered are ignored.
func (n *Navigator) ScrollToSection(id Section) {
	if n.vp == nil || !id.Valid() {
		return
	}
	rect, ok := n.vp.Locate(id)
	if !ok {
		return
	}
	n.vp.SmoothScrollTo(n.vp.ScrollOffset() + rect.Top)
}

// ActiveAt returns the first section, in canonical order, whose region
// straddles the line probe units below the viewport top. Earlier sections win
// ties on a shared boundary.
func ActiveAt(vp Viewport, probe float64) (Section, bool) {
	for _, id := range Sections() {
		rect, ok := vp.Locate(id)
		if !ok {
			continue
		}
		if rect.Contains(probe) {
			return id, true
		}
	}
	return Home, false
}
