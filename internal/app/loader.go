package app

import (
	"fmt"
	"path/filepath"

	"github.com/kyaoi/termfolio/internal/config"
	"github.com/kyaoi/termfolio/internal/content"
	"github.com/kyaoi/termfolio/internal/ui"
)

// LoadInitialState reads the portfolio content and prepares the UI state.
func LoadInitialState(cfg *config.Config) (ui.State, error) {
	if err := cfg.Validate(); err != nil {
		return ui.State{}, fmt.Errorf("invalid config: %w", err)
	}

	state := ui.State{
		Style:             cfg.Style,
		RowHeight:         cfg.RowHeight,
		ScrolledThreshold: cfg.ScrolledThreshold,
		ProbeLine:         cfg.ProbeLine,
		ScrollFPS:         cfg.Scroll.FPS,
		ScrollFrequency:   cfg.Scroll.Frequency,
		ScrollDamping:     cfg.Scroll.Damping,
	}

	if cfg.ContentDir == "" {
		p, err := content.Default()
		if err != nil {
			return ui.State{}, err
		}
		state.Portfolio = p
		return state, nil
	}

	absDir, err := filepath.Abs(cfg.ContentDir)
	if err != nil {
		return ui.State{}, err
	}
	p, err := content.LoadDir(absDir)
	if err != nil {
		return ui.State{}, err
	}
	state.Portfolio = p
	state.ContentDir = absDir
	return state, nil
}
