package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

const samplePage = `<!DOCTYPE html>
<html><head><title>Jobs</title></head>
<body style="margin: 0">
  <h1 id="title" style="text-align: right">Open roles</h1>
  <p>Find a job <a href="/jobs">here</a>.</p>
  <img src="logo.png">
  <video src="intro.mp4"></video>
</body></html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(samplePage)
	require.NoError(t, err)
	return doc
}

func TestParseSynthesizesRoots(t *testing.T) {
	t.Parallel()

	doc := New()
	require.NotNil(t, doc.DocumentElement())
	require.NotNil(t, doc.Head())
	require.NotNil(t, doc.Body())
	assert.Equal(t, "html", doc.DocumentElement().Tag())
	assert.Equal(t, DefaultViewportHeight, doc.ViewportHeight())
}

func TestQueryReturnsDocumentOrder(t *testing.T) {
	t.Parallel()

	doc := parseSample(t)
	media := doc.Query("video", "img")
	require.Len(t, media, 2)
	assert.Equal(t, "img", media[0].Tag())
	assert.Equal(t, "video", media[1].Tag())

	assert.Empty(t, doc.Query("audio"))
	assert.NotNil(t, doc.Query("audio"))
}

func TestBodyElementsStartsWithBody(t *testing.T) {
	t.Parallel()

	doc := parseSample(t)
	elements := doc.BodyElements()
	require.NotEmpty(t, elements)
	assert.Equal(t, "body", elements[0].Tag())

	tags := make([]string, 0, len(elements))
	for _, el := range elements {
		tags = append(tags, el.Tag())
	}
	assert.Equal(t, []string{"body", "h1", "p", "a", "img", "video"}, tags)
}

func TestWrappersAreStable(t *testing.T) {
	t.Parallel()

	doc := parseSample(t)
	first, ok := doc.ElementByID("title")
	require.True(t, ok)
	second := doc.Query("h1")[0]
	assert.Same(t, first, second)

	_, ok = doc.ElementByID("missing")
	assert.False(t, ok)
}

func TestCreateAppendRemove(t *testing.T) {
	t.Parallel()

	doc := parseSample(t)
	panel := doc.CreateElement("DIV")
	assert.False(t, panel.Connected())

	panel.SetAttr("id", "panel")
	doc.Body().Append(panel)
	assert.True(t, panel.Connected())
	found, ok := doc.ElementByID("panel")
	require.True(t, ok)
	assert.Same(t, panel, found)

	panel.Remove()
	assert.False(t, panel.Connected())
	panel.Remove()
	_, ok = doc.ElementByID("panel")
	assert.False(t, ok)
}

func TestDescendantOfDetachedElementIsNotConnected(t *testing.T) {
	t.Parallel()

	doc := parseSample(t)
	link := doc.Query("a")[0]
	paragraph := doc.Query("p")[0]
	require.True(t, link.Connected())

	paragraph.Remove()
	assert.False(t, link.Connected())
	assert.Empty(t, doc.Query("a"))
}

func TestStyleTextRenders(t *testing.T) {
	t.Parallel()

	doc := New()
	style := doc.CreateElement("style")
	style.SetText("a:hover { outline: 2px solid red; }")
	doc.Head().Append(style)

	assert.Equal(t, "a:hover { outline: 2px solid red; }", style.Text())
	assert.Contains(t, doc.String(), "<style>a:hover { outline: 2px solid red; }</style>")
}

func TestEventListeners(t *testing.T) {
	t.Parallel()

	doc := New()
	var keys []string
	remove := doc.AddEventListener("keydown", func(e ports.Event) {
		keys = append(keys, e.Key)
	})
	assert.Equal(t, 1, doc.ListenerCount("keydown"))

	doc.Dispatch(ports.Event{Type: "keydown", Key: "Escape"})
	doc.Dispatch(ports.Event{Type: "pointermove", ClientY: 10})
	assert.Equal(t, []string{"Escape"}, keys)

	remove()
	remove()
	assert.Equal(t, 0, doc.ListenerCount("keydown"))
	doc.Dispatch(ports.Event{Type: "keydown", Key: "Enter"})
	assert.Len(t, keys, 1)
}

func TestListenerMayRemoveItselfDuringDispatch(t *testing.T) {
	t.Parallel()

	doc := New()
	calls := 0
	var remove func()
	remove = doc.AddEventListener("keydown", func(ports.Event) {
		calls++
		remove()
	})

	doc.Dispatch(ports.Event{Type: "keydown"})
	doc.Dispatch(ports.Event{Type: "keydown"})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, doc.ListenerCount("keydown"))
}
