package ui

import (
	"log"

	"github.com/kyaoi/termfolio/internal/content"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Portfolio  *content.Portfolio
	ContentDir string
	Style      string

	// RowHeight is the number of units per terminal row. The thresholds are
	// in units and are used as given, so zero is a valid setting.
	RowHeight         float64
	ScrolledThreshold float64
	ProbeLine         float64

	ScrollFPS       int
	ScrollFrequency float64
	ScrollDamping   float64

	Logger *log.Logger
}
