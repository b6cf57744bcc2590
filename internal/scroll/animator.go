// Package scroll animates viewport offsets with a damped spring.
package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is the distance and velocity, in units, below which an
// animation snaps to its target.
const settleEpsilon = 0.5

// Defaults for the spring.
const (
	DefaultFPS       = 60
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0
)

// Animator drives one scroll animation at a time.
type Animator struct {
	fps    int
	spring harmonica.Spring

	pos      float64
	vel      float64
	target   float64
	running  bool
	gen      int
	maxSteps int
	steps    int
}

// NewAnimator returns an animator stepping fps times per second.
func NewAnimator(fps int, frequency, damping float64) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{
		fps:      fps,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		maxSteps: fps * 10,
	}
}

// Interval is the time between frames.
func (a *Animator) Interval() time.Duration {
	return time.Second / time.Duration(a.fps)
}

// Start begins animating from the current offset to target and returns the
// generation of the new animation.
func (a *Animator) Start(from, target float64) int {
	a.gen++
	a.pos = from
	a.vel = 0
	a.target = target
	a.steps = 0
	a.running = from != target
	return a.gen
}

// Stop cancels the running animation. Pending frames become stale.
func (a *Animator) Stop() {
	if a.running {
		a.gen++
	}
	a.running = false
}

// Running reports whether an animation is in progress.
func (a *Animator) Running() bool {
	return a.running
}

// Generation identifies the current animation.
func (a *Animator) Generation() int {
	return a.gen
}

// Target returns the destination of the current animation.
func (a *Animator) Target() float64 {
	return a.target
}

// Step advances one frame. done is true once the position has settled on
// the target.
func (a *Animator) Step() (pos float64, done bool) {
	if !a.running {
		return a.pos, true
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	a.steps++
	if (math.Abs(a.target-a.pos) < settleEpsilon && math.Abs(a.vel) < settleEpsilon) || a.steps >= a.maxSteps {
		a.pos = a.target
		a.vel = 0
		a.running = false
		return a.pos, true
	}
	return a.pos, false
}
