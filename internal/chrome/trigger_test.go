package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/i18n"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

func TestRenderTriggerFollowsPosition(t *testing.T) {
	t.Parallel()

	doc := dom.New()
	before := doc.String()
	tree := settings.Defaults()

	RenderTrigger(doc, tree, i18n.MustLoad("es"))
	btn, ok := doc.ElementByID(TriggerID)
	require.True(t, ok)
	assert.Equal(t, "1rem", btn.Style("right"))
	assert.Equal(t, "Opciones de accesibilidad", btn.Text())

	tree.Widget.Position = settings.PositionLeft
	remove := RenderTrigger(doc, tree, nil)
	btn, ok = doc.ElementByID(TriggerID)
	require.True(t, ok)
	assert.Equal(t, "1rem", btn.Style("left"))
	assert.Equal(t, "auto", btn.Style("right"))
	assert.Equal(t, "widget.trigger", btn.Text())

	remove()
	assert.Equal(t, before, doc.String())
}
