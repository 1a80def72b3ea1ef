// Package tui is the terminal settings panel: one row per accommodation
// option, the trigger position, and the keyboard shortcut dialog.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/accommodate/internal/chrome"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// Model is the Bubbletea state of the panel. Settings live in the store; the
// model only tracks the cursor and terminal size.
type Model struct {
	store      *settings.Store
	profiles   *profiles.Controller
	chrome     *chrome.Controller
	doc        ports.Document
	translator ports.Translator

	rows   []row
	cursor int
	keys   keyMap
	help   help.Model

	width  int
	height int
	quit   bool
}

// Deps are the collaborators the panel drives. Doc is the document the
// chrome controller listens on; dialog keys are dispatched to it.
type Deps struct {
	Store      *settings.Store
	Profiles   *profiles.Controller
	Chrome     *chrome.Controller
	Doc        ports.Document
	Translator ports.Translator
}

// NewModel creates the panel.
func NewModel(deps Deps) Model {
	return Model{
		store:      deps.Store,
		profiles:   deps.Profiles,
		chrome:     deps.Chrome,
		doc:        deps.Doc,
		translator: deps.Translator,
		rows:       buildRows(),
		keys:       defaultKeys(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the panel on the terminal and blocks until it quits.
func Run(m Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func (m Model) t(key string) string {
	if m.translator == nil {
		return key
	}
	return m.translator.Translate(key)
}

// MoveCursorUp moves the selection up, stopping at the first row.
func (m *Model) MoveCursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveCursorDown moves the selection down, stopping at the last row.
func (m *Model) MoveCursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// activate presses the row under the cursor.
func (m Model) activate() {
	r := m.rows[m.cursor]
	switch r.kind {
	case choiceRow:
		selectors[r.path](m.store, r.value)
	case toggleRow:
		_ = m.store.Toggle(r.path)
	case profileRow:
		active := m.store.Get().Profiles.Is(settings.ActiveProfile(r.value))
		_ = m.profiles.ActivateProfile(r.value, !active)
	}
}
