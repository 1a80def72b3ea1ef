package accommodation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

func TestAlignmentAppliesToEveryElementAndRestores(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	before := doc.String()
	headline := byID(t, doc, "headline")
	plain := byID(t, doc, "plain")

	cleanup := TextAlignment().Apply(doc, settings.AlignCenter)
	for _, el := range pageElements(doc) {
		assert.Equal(t, "center", el.Style("text-align"), el.Tag())
	}

	original, marked := headline.Attr(alignMarker)
	require.True(t, marked)
	assert.Equal(t, "right", original)

	cleanup()
	assert.Equal(t, "right", headline.Style("text-align"))
	assert.Equal(t, "", plain.Style("text-align"))
	assert.Equal(t, before, doc.String())
}

func TestAlignmentIdempotentAndSwitchesDirectly(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	headline := byID(t, doc, "headline")
	alignment := TextAlignment()

	alignment.Apply(doc, settings.AlignLeft)
	snapshot := doc.String()
	alignment.Apply(doc, settings.AlignLeft)
	assert.Equal(t, snapshot, doc.String())

	alignment.Apply(doc, settings.AlignRight)
	original, _ := headline.Attr(alignMarker)
	assert.Equal(t, "right", original)

	alignment.Apply(doc, settings.AlignDefault)
	assert.Equal(t, "right", headline.Style("text-align"))
	_, marked := headline.Attr(alignMarker)
	assert.False(t, marked)
}

func TestAlignmentCleanupClearsUnmarkedOverride(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	plain := byID(t, doc, "plain")
	cleanup := TextAlignment().Apply(doc, settings.AlignCenter)

	// Marker lost to an unrelated script; the override is still ours.
	plain.RemoveAttr(alignMarker)
	cleanup()
	assert.Equal(t, "", plain.Style("text-align"))

	// Elements inserted later with their own alignment are left alone.
	cleanup = TextAlignment().Apply(doc, settings.AlignCenter)
	late := doc.CreateElement("p")
	late.SetStyle("text-align", "justify")
	doc.Body().Append(late)
	cleanup()
	assert.Equal(t, "justify", late.Style("text-align"))
}

func TestContentScalingStateless(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	scaling := ContentScaling()

	scaling.Apply(doc, settings.ScalingLarge)
	assert.Equal(t, "125%", doc.DocumentElement().Style("font-size"))
	cleanup := scaling.Apply(doc, settings.ScalingLarger)
	assert.Equal(t, "150%", doc.DocumentElement().Style("font-size"))
	cleanup()
	assert.Equal(t, "", doc.DocumentElement().Style("font-size"))
}

func TestHighlightHoverStyleIsSingleton(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	hover := HighlightHover()

	hover.Apply(doc, true)
	hover.Apply(doc, true)
	assert.Equal(t, 1, countByID(doc, HoverStyleID))

	el := byID(t, doc, HoverStyleID)
	assert.Equal(t, "style", el.Tag())
	assert.Contains(t, el.Text(), ":hover")

	hover.Apply(doc, false)
	assert.Equal(t, 0, countByID(doc, HoverStyleID))
	assert.NotContains(t, doc.String(), "<style")
}

func TestHighlightLinksRoundTrip(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	before := doc.String()
	link := byID(t, doc, "apply")
	links := HighlightLinks()

	cleanup := links.Apply(doc, true)
	links.Apply(doc, true)
	assert.Equal(t, "underline", link.Style("text-decoration"))
	assert.Equal(t, "2px solid #ffbf47", link.Style("outline"))

	cleanup()
	assert.Equal(t, "none", link.Style("text-decoration"))
	assert.Equal(t, "", link.Style("outline"))
	assert.Equal(t, before, doc.String())
}

func TestHighlightTitlesRoundTrip(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	before := doc.String()
	headline := byID(t, doc, "headline")
	sub := doc.Query("h2")[0]

	cleanup := HighlightTitles().Apply(doc, true)
	assert.Equal(t, "2px dashed #1d70b8", headline.Style("outline"))
	assert.Equal(t, "2px dashed #1d70b8", sub.Style("outline"))

	HighlightTitles().Apply(doc, false)
	assert.Equal(t, "1px solid red", headline.Style("outline"))
	assert.Equal(t, before, doc.String())
	require.NotPanics(t, func() { cleanup() })
	assert.Equal(t, before, doc.String())
}

func TestReadableFontInjectsStyleAndOverridesInlineFonts(t *testing.T) {
	t.Parallel()

	doc := fixture(t)
	before := doc.String()
	intro := byID(t, doc, "intro")
	plain := byID(t, doc, "plain")
	font := ReadableFont()

	font.Apply(doc, true)
	cleanup := font.Apply(doc, true)

	assert.Equal(t, 1, countByID(doc, ReadableFontStyleID))
	assert.Equal(t, readableFontFamily, intro.Style("font-family"))
	_, marked := plain.Attr(readableFontMarker)
	assert.False(t, marked, "elements without an inline font rely on the style block")

	cleanup()
	assert.Equal(t, "Garamond", intro.Style("font-family"))
	assert.Equal(t, 0, countByID(doc, ReadableFontStyleID))
	assert.Equal(t, before, doc.String())
}
