package config

import (
	"github.com/kyaoi/termfolio/internal/nav"
	"github.com/kyaoi/termfolio/internal/render"
	"github.com/kyaoi/termfolio/internal/scroll"
)

// DefaultRowHeight is the number of units one terminal row stands for.
const DefaultRowHeight = 20

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Style:             render.DefaultStyle,
		RowHeight:         DefaultRowHeight,
		ScrolledThreshold: nav.DefaultScrolledThreshold,
		ProbeLine:         nav.DefaultProbeLine,
		Scroll: ScrollConfig{
			FPS:       scroll.DefaultFPS,
			Frequency: scroll.DefaultFrequency,
			Damping:   scroll.DefaultDamping,
		},
		Mouse: true,
	}
}
