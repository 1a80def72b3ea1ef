package accommodation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/dom"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// Inline styles are written in the canonical "prop: value;" form so that a
// restored document renders byte-for-byte like the original.
const fixturePage = `<!DOCTYPE html>
<html><head><title>Offers</title></head>
<body>
  <header style="background-color: #eee;">
    <h1 id="headline" style="text-align: right; outline: 1px solid red;">Offers</h1>
    <h2>Latest</h2>
  </header>
  <main>
    <p id="intro" style="color: #333; font-family: Garamond;">Browse <a id="apply" href="/apply" style="text-decoration: none;">open offers</a>.</p>
    <p id="plain">No inline styles here.</p>
    <img id="logo" src="logo.png">
    <svg id="icon"></svg>
    <audio id="jingle" src="jingle.mp3"></audio>
    <video id="intro-video" src="intro.mp4"></video>
  </main>
</body></html>`

func fixture(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(fixturePage, dom.WithViewportHeight(1000))
	require.NoError(t, err)
	return doc
}

func byID(t *testing.T, doc ports.Document, id string) ports.Element {
	t.Helper()
	el, ok := doc.ElementByID(id)
	require.True(t, ok, "element %q not found", id)
	return el
}

// countByID counts connected elements carrying id.
func countByID(doc ports.Document, id string) int {
	n := 0
	for _, el := range doc.Query("style", "div") {
		if v, ok := el.Attr("id"); ok && v == id {
			n++
		}
	}
	return n
}
