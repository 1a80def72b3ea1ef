// Package chrome controls the floating trigger and the keyboard shortcut
// dialog. Neither affects any accommodation.
package chrome

import (
	"sync"

	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const keydown = "keydown"

// Keys that close the shortcut dialog.
const (
	KeyEscape = "Escape"
	KeyEnter  = "Enter"
	KeySpace  = " "
)

// Shortcut is one row of the keyboard shortcut dialog.
type Shortcut struct {
	Keys  []string
	Label string
}

var shortcutRows = []struct {
	keys []string
	key  string
}{
	{keys: []string{"enter", "space"}, key: "shortcuts.select"},
	{keys: []string{"↑", "↓"}, key: "shortcuts.move"},
	{keys: []string{"p"}, key: "shortcuts.position"},
	{keys: []string{"?"}, key: "shortcuts.help"},
	{keys: []string{"r"}, key: "shortcuts.reset"},
	{keys: []string{"q"}, key: "shortcuts.quit"},
	{keys: []string{"esc", "enter", "space"}, key: "shortcuts.dismiss"},
}

// Controller owns the widget position and the dialog key listener.
//
// The listener follows ui.keyboardDialogOpen through a store watch rather than
// the toggle call, so it is attached exactly while the dialog is open no
// matter who writes the field.
type Controller struct {
	store      *settings.Store
	doc        ports.Document
	translator ports.Translator
	log        ports.Logger

	mu        sync.Mutex
	removeKey func()
	unwatch   func()
}

// NewController starts watching the dialog state. A nil translator shows raw
// keys; a nil logger discards output.
func NewController(store *settings.Store, doc ports.Document, translator ports.Translator, log ports.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	c := &Controller{
		store:      store,
		doc:        doc,
		translator: translator,
		log:        log.With("component", "chrome"),
	}
	c.unwatch = settings.Watch(store,
		func(t settings.Tree) bool { return t.UI.KeyboardDialogOpen },
		c.syncListener)
	if store.Get().UI.KeyboardDialogOpen {
		c.syncListener(true)
	}
	return c
}

// TogglePosition moves the trigger to the other screen edge.
func (c *Controller) TogglePosition() {
	c.store.Batch(func(t *settings.Tree) {
		if t.Widget.Position == settings.PositionLeft {
			t.Widget.Position = settings.PositionRight
		} else {
			t.Widget.Position = settings.PositionLeft
		}
	})
}

// ToggleKeyboardDialog opens the dialog when closed and closes it when open.
func (c *Controller) ToggleKeyboardDialog() {
	c.store.Batch(func(t *settings.Tree) {
		t.UI.KeyboardDialogOpen = !t.UI.KeyboardDialogOpen
	})
}

// Position returns the current trigger edge.
func (c *Controller) Position() settings.Position {
	return c.store.Get().Widget.Position
}

// DialogOpen reports whether the shortcut dialog is showing.
func (c *Controller) DialogOpen() bool {
	return c.store.Get().UI.KeyboardDialogOpen
}

// Shortcuts returns the rows of the shortcut dialog with translated labels.
func (c *Controller) Shortcuts() []Shortcut {
	out := make([]Shortcut, 0, len(shortcutRows))
	for _, row := range shortcutRows {
		label := row.key
		if c.translator != nil {
			label = c.translator.Translate(row.key)
		}
		out = append(out, Shortcut{Keys: append([]string(nil), row.keys...), Label: label})
	}
	return out
}

// Close stops watching the store and detaches the key listener. The dialog
// field itself is left untouched.
func (c *Controller) Close() {
	c.mu.Lock()
	unwatch := c.unwatch
	c.unwatch = nil
	c.mu.Unlock()
	if unwatch != nil {
		unwatch()
	}
	c.syncListener(false)
}

func (c *Controller) syncListener(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !open {
		if c.removeKey != nil {
			c.removeKey()
			c.removeKey = nil
			c.log.Debug("dialog key listener detached")
		}
		return
	}
	if c.removeKey != nil || c.unwatch == nil {
		return
	}
	c.removeKey = c.doc.AddEventListener(keydown, c.onKey)
	c.log.Debug("dialog key listener attached")
}

func (c *Controller) onKey(e ports.Event) {
	switch e.Key {
	case KeyEscape, KeyEnter, KeySpace, "Esc", "Spacebar":
		c.store.Batch(func(t *settings.Tree) { t.UI.KeyboardDialogOpen = false })
	}
}
