package app

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/termfolio/internal/config"
	"github.com/kyaoi/termfolio/internal/ui"
)

// Run executes the Bubble Tea program for the portfolio.
func Run(cfg *config.Config) error {
	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := LoadInitialState(cfg)
	if err != nil {
		return err
	}
	state.Logger = logger
	return runProgram(state, cfg.Mouse)
}

func runProgram(state ui.State, mouse bool) error {
	model := ui.NewModel(state)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	return err
}

// openLog sends log output to path. With an empty path logs are discarded.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(path, "termfolio")
	if err != nil {
		return nil, nil, err
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
