package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quit = true
		return m, tea.Quit
	}

	// While the dialog is open the chrome controller's document listener
	// owns the keyboard.
	if m.chrome.DialogOpen() {
		m.doc.Dispatch(ports.Event{Type: "keydown", Key: domKey(msg)})
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.MoveCursorUp()
	case key.Matches(msg, m.keys.Down):
		m.MoveCursorDown()
	case key.Matches(msg, m.keys.Select):
		m.activate()
	case key.Matches(msg, m.keys.Position):
		m.chrome.TogglePosition()
	case key.Matches(msg, m.keys.Help):
		m.chrome.ToggleKeyboardDialog()
	case key.Matches(msg, m.keys.Reset):
		m.store.Reset()
	}
	return m, nil
}

// domKey maps a terminal key onto the logical key name a browser reports.
func domKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEsc:
		return chrome.KeyEscape
	case tea.KeyEnter:
		return chrome.KeyEnter
	case tea.KeySpace:
		return chrome.KeySpace
	}
	return msg.String()
}
