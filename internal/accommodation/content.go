package accommodation

import (
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const (
	alignmentName       = "alignment"
	contentScalingName  = "contentScaling"
	highlightHoverName  = "highlightHover"
	highlightLinksName  = "highlightLinks"
	highlightTitlesName = "highlightTitles"
	readableFontName    = "readableFont"
)

// Reserved ids of the injected style blocks.
const (
	HoverStyleID        = "a11y-style-highlight-hover"
	ReadableFontStyleID = "a11y-style-readable-font"
)

const (
	hoverCSS = `body *:hover { outline: 2px solid #ffbf47 !important; outline-offset: 2px !important; }`

	readableFontFamily = `Verdana, Arial, Helvetica, sans-serif`
	readableFontCSS    = `body, body * { font-family: ` + readableFontFamily + ` !important; letter-spacing: 0.02em; }`
)

var scalingSizes = map[settings.Scaling]string{
	settings.ScalingLarge:  "125%",
	settings.ScalingLarger: "150%",
}

var (
	alignMarker        = marker(alignmentName, "text-align")
	linkOutlineMarker  = marker("links", "outline")
	linkDecorMarker    = marker("links", "text-decoration")
	titleOutlineMarker = marker("titles", "outline")
	titleOffsetMarker  = marker("titles", "outline-offset")
	readableFontMarker = marker("font", "font-family")
	scalingMarker      = marker(contentScalingName, "font-size")
	titleTags          = []string{"h1", "h2", "h3", "h4", "h5", "h6"}
)

// Content returns the content family.
func Content() []Applier {
	return []Applier{
		TextAlignment(),
		ContentScaling(),
		HighlightHover(),
		HighlightLinks(),
		HighlightTitles(),
		ReadableFont(),
	}
}

// TextAlignment forces text-align on the body and on every element below it.
// Inherited alignment does not win over elements that declare their own, so
// each element is overridden individually.
func TextAlignment() Accommodation[settings.Alignment] {
	return New(alignmentName,
		func(t settings.Tree) settings.Alignment { return t.Content.Alignment },
		applyAlignment)
}

func applyAlignment(doc ports.Document, a settings.Alignment) Cleanup {
	if a == settings.AlignDefault {
		resetAlignment(doc, "")
		return noop
	}
	value := string(a)
	for _, el := range pageElements(doc) {
		override(el, alignMarker, "text-align", value)
	}
	return func() { resetAlignment(doc, value) }
}

// resetAlignment restores every marked element. An unmarked element that
// still carries the value this applier wrote has its inline override cleared.
func resetAlignment(doc ports.Document, applied string) {
	for _, el := range pageElements(doc) {
		if restore(el, alignMarker, "text-align") {
			continue
		}
		if applied != "" && el.Style("text-align") == applied {
			el.RemoveStyle("text-align")
		}
	}
}

// ContentScaling enlarges the root font size.
func ContentScaling() Accommodation[settings.Scaling] {
	return New(contentScalingName,
		func(t settings.Tree) settings.Scaling { return t.Content.ContentScaling },
		func(doc ports.Document, s settings.Scaling) Cleanup {
			undo := func() { restoreOn(doc.DocumentElement(), scalingMarker, "font-size") }
			size, ok := scalingSizes[s]
			if !ok {
				undo()
				return noop
			}
			overrideOn(doc.DocumentElement(), scalingMarker, "font-size", size)
			return undo
		})
}

// HighlightHover outlines whatever the pointer is over.
func HighlightHover() Accommodation[bool] {
	return New(highlightHoverName,
		func(t settings.Tree) bool { return t.Content.HighlightHover },
		func(doc ports.Document, on bool) Cleanup {
			if !on {
				removeByID(doc, HoverStyleID)
				return noop
			}
			return injectStyle(doc, highlightHoverName, HoverStyleID, hoverCSS)
		})
}

// HighlightLinks outlines and underlines every link.
func HighlightLinks() Accommodation[bool] {
	return New(highlightLinksName,
		func(t settings.Tree) bool { return t.Content.HighlightLinks },
		func(doc ports.Document, on bool) Cleanup {
			restoreLinks := func() {
				links := pageQuery(doc, "a")
				restoreEach(links, linkOutlineMarker, "outline")
				restoreEach(links, linkDecorMarker, "text-decoration")
			}
			if !on {
				restoreLinks()
				return noop
			}
			for _, el := range pageQuery(doc, "a") {
				override(el, linkOutlineMarker, "outline", "2px solid #ffbf47")
				override(el, linkDecorMarker, "text-decoration", "underline")
			}
			return restoreLinks
		})
}

// HighlightTitles outlines every heading.
func HighlightTitles() Accommodation[bool] {
	return New(highlightTitlesName,
		func(t settings.Tree) bool { return t.Content.HighlightTitles },
		func(doc ports.Document, on bool) Cleanup {
			restoreTitles := func() {
				titles := pageQuery(doc, titleTags...)
				restoreEach(titles, titleOutlineMarker, "outline")
				restoreEach(titles, titleOffsetMarker, "outline-offset")
			}
			if !on {
				restoreTitles()
				return noop
			}
			for _, el := range pageQuery(doc, titleTags...) {
				override(el, titleOutlineMarker, "outline", "2px dashed #1d70b8")
				override(el, titleOffsetMarker, "outline-offset", "4px")
			}
			return restoreTitles
		})
}

// ReadableFont swaps every font for a legible sans-serif. A global style block
// covers stylesheet fonts; elements with their own inline font-family are
// overridden individually because inline declarations win over the block.
func ReadableFont() Accommodation[bool] {
	return New(readableFontName,
		func(t settings.Tree) bool { return t.Content.ReadableFont },
		func(doc ports.Document, on bool) Cleanup {
			restoreFonts := func() {
				removeByID(doc, ReadableFontStyleID)
				restoreEach(pageElements(doc), readableFontMarker, "font-family")
			}
			if !on {
				restoreFonts()
				return noop
			}
			injectStyle(doc, readableFontName, ReadableFontStyleID, readableFontCSS)
			for _, el := range pageElements(doc) {
				_, marked := el.Attr(readableFontMarker)
				if marked || el.Style("font-family") != "" {
					override(el, readableFontMarker, "font-family", readableFontFamily)
				}
			}
			return restoreFonts
		})
}
