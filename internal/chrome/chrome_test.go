package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/i18n"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

func newController(t *testing.T) (*Controller, *settings.Store, *dom.Document) {
	t.Helper()
	store := settings.NewStore(settings.Defaults())
	doc := dom.New()
	c := NewController(store, doc, i18n.MustLoad("en"), nil)
	t.Cleanup(c.Close)
	return c, store, doc
}

func TestTogglePositionFlipsBetweenEdges(t *testing.T) {
	t.Parallel()

	c, store, _ := newController(t)
	before := store.Get()

	c.TogglePosition()
	assert.Equal(t, settings.PositionLeft, c.Position())
	c.TogglePosition()
	assert.Equal(t, settings.PositionRight, c.Position())

	assert.Equal(t, before, store.Get())
}

func TestPositionDoesNotTouchAccommodations(t *testing.T) {
	t.Parallel()

	c, store, _ := newController(t)
	var changed []string
	store.Subscribe(func(prev, next settings.Tree) {
		changed = append(changed, settings.Changed(prev, next)...)
	})

	c.TogglePosition()
	assert.Equal(t, []string{"widget.position"}, changed)
}

func TestDialogListenerOnlyWhileOpen(t *testing.T) {
	t.Parallel()

	c, _, doc := newController(t)
	assert.Equal(t, 0, doc.ListenerCount(keydown))

	for i := 0; i < 5; i++ {
		c.ToggleKeyboardDialog()
		require.True(t, c.DialogOpen())
		require.Equal(t, 1, doc.ListenerCount(keydown))

		c.ToggleKeyboardDialog()
		require.False(t, c.DialogOpen())
	}
	assert.Equal(t, 0, doc.ListenerCount(keydown))
}

func TestDialogClosesOnDismissKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{KeyEscape, KeyEnter, KeySpace} {
		t.Run(key, func(t *testing.T) {
			c, _, doc := newController(t)
			c.ToggleKeyboardDialog()

			doc.Dispatch(ports.Event{Type: keydown, Key: "a"})
			require.True(t, c.DialogOpen(), "other keys keep the dialog open")

			doc.Dispatch(ports.Event{Type: keydown, Key: key})
			assert.False(t, c.DialogOpen())
			assert.Equal(t, 0, doc.ListenerCount(keydown))
		})
	}
}

func TestListenerFollowsDirectStoreWrites(t *testing.T) {
	t.Parallel()

	_, store, doc := newController(t)
	require.NoError(t, store.Update("ui.keyboardDialogOpen", true))
	assert.Equal(t, 1, doc.ListenerCount(keydown))

	store.Reset()
	assert.Equal(t, 0, doc.ListenerCount(keydown))
}

func TestControllerOnAlreadyOpenDialog(t *testing.T) {
	t.Parallel()

	tree := settings.Defaults()
	tree.UI.KeyboardDialogOpen = true
	store := settings.NewStore(tree)
	doc := dom.New()

	c := NewController(store, doc, nil, nil)
	assert.Equal(t, 1, doc.ListenerCount(keydown))

	c.Close()
	c.Close()
	assert.Equal(t, 0, doc.ListenerCount(keydown))
	assert.Equal(t, 0, store.ObserverCount())

	require.NoError(t, store.Update("ui.keyboardDialogOpen", false))
	require.NoError(t, store.Update("ui.keyboardDialogOpen", true))
	assert.Equal(t, 0, doc.ListenerCount(keydown), "closed controller stays detached")
}

func TestShortcutsAreTranslated(t *testing.T) {
	t.Parallel()

	store := settings.NewStore(settings.Defaults())
	c := NewController(store, dom.New(), i18n.MustLoad("fr"), nil)
	defer c.Close()

	rows := c.Shortcuts()
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"p"}, rows[2].Keys)
	assert.Equal(t, "Déplacer le widget de l'autre côté", rows[2].Label)

	raw := NewController(store, dom.New(), nil, nil)
	defer raw.Close()
	assert.Equal(t, "shortcuts.position", raw.Shortcuts()[2].Label)
}
