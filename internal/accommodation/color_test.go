package accommodation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

func TestContrastRoundTripRestoresInlineColors(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	before := doc.String()
	intro := byID(t, doc, "intro")
	header := doc.Query("header")[0]

	cleanup := ContrastTheme().Apply(doc, settings.ContrastDark)
	assert.Equal(t, "#f5f5f5", intro.Style("color"))
	assert.Equal(t, "#121212", header.Style("background-color"))
	assert.Equal(t, "#121212", doc.Body().Style("background-color"))

	original, marked := intro.Attr(contrastColorMarker)
	require.True(t, marked)
	assert.Equal(t, "#333", original)

	cleanup()
	assert.Equal(t, "#333", intro.Style("color"))
	assert.Equal(t, "#eee", header.Style("background-color"))
	assert.Equal(t, before, doc.String())
}

func TestContrastReapplyDoesNotRecaptureOverriddenValue(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	intro := byID(t, doc, "intro")
	contrast := ContrastTheme()

	contrast.Apply(doc, settings.ContrastDark)
	once := doc.String()
	contrast.Apply(doc, settings.ContrastDark)
	assert.Equal(t, once, doc.String(), "second apply must be a no-op")

	// Switching palettes keeps the original captured value.
	contrast.Apply(doc, settings.ContrastHigh)
	assert.Equal(t, "#ffff00", intro.Style("color"))
	original, _ := intro.Attr(contrastColorMarker)
	assert.Equal(t, "#333", original)

	contrast.Apply(doc, settings.ContrastDefault)
	assert.Equal(t, "#333", intro.Style("color"))
	_, marked := intro.Attr(contrastColorMarker)
	assert.False(t, marked)
}

func TestContrastCleanupSkipsDetachedElements(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	intro := byID(t, doc, "intro")
	cleanup := ContrastTheme().Apply(doc, settings.ContrastLight)

	intro.Remove()
	require.NotPanics(t, func() { cleanup() })

	// The detached node keeps its marker; it is no longer part of the document.
	_, marked := intro.Attr(contrastColorMarker)
	assert.True(t, marked)
	assert.NotContains(t, doc.String(), contrastColorMarker)
}

func TestSaturationAndMonochromeAreStateless(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	saturation := Saturation()
	monochrome := Monochrome()

	saturation.Apply(doc, settings.SaturationLow)
	assert.Equal(t, "saturate(50%)", doc.Body().Style("filter"))
	saturation.Apply(doc, settings.SaturationHigh)
	assert.Equal(t, "saturate(200%)", doc.Body().Style("filter"))
	saturation.Apply(doc, settings.SaturationDefault)
	assert.Equal(t, "", doc.Body().Style("filter"))

	cleanup := monochrome.Apply(doc, true)
	monochrome.Apply(doc, true)
	assert.Equal(t, "grayscale(100%)", doc.DocumentElement().Style("filter"))
	cleanup()
	assert.Equal(t, "", doc.DocumentElement().Style("filter"))

	monochrome.Apply(doc, true)
	monochrome.Apply(doc, false)
	_, hasStyle := doc.DocumentElement().Attr("style")
	assert.False(t, hasStyle)
}

func TestColorFiltersDoNotClobberEachOther(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	cleanMono := Monochrome().Apply(doc, true)
	cleanSat := Saturation().Apply(doc, settings.SaturationHigh)

	cleanMono()
	assert.Equal(t, "saturate(200%)", doc.Body().Style("filter"))
	cleanSat()
	assert.Equal(t, "", doc.Body().Style("filter"))
}
