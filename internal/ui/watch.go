package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/termfolio/internal/content"
)

func (m *Model) startWatching(dir string) tea.Cmd {
	if dir == "" {
		return nil
	}
	dir = filepath.Clean(dir)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go watchLoop(watcher, m.watchChan)
	return nil
}

func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			out <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			out <- fileWatchErrMsg{err: err}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.contentDir == "" || !content.IsContentFile(filepath.Base(msg.path)) {
		return m.waitForFileEvent()
	}
	m.reloadContent()
	return m.waitForFileEvent()
}

// reloadContent re-reads the content directory and re-renders the page at
// the current offset. A failed reload keeps the previous content.
func (m *Model) reloadContent() {
	p, err := content.LoadDir(m.contentDir)
	if err != nil {
		m.err = err
		m.logger.Printf("reload %s: %v", m.contentDir, err)
		return
	}
	m.portfolio = p
	m.logger.Printf("reloaded %s", m.contentDir)
	m.renderPage()
}
