package accommodation

import (
	"encoding/base64"
	"fmt"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const (
	muteSoundsName     = "muteSounds"
	hideImagesName     = "hideImages"
	cursorName         = "cursor"
	stopAnimationsName = "stopAnimations"
)

// StopAnimationsStyleID is the reserved id of the animation suppression block.
const StopAnimationsStyleID = "a11y-style-stop-animations"

const stopAnimationsCSS = `*, *::before, *::after { animation: none !important; transition: none !important; scroll-behavior: auto !important; }`

var (
	soundTags = []string{"audio", "video"}
	imageTags = []string{"img", "picture", "svg", "video"}

	mutedMarker   = marker(muteSoundsName, "muted")
	displayMarker = marker(hideImagesName, "display")
	cursorMarker  = marker(cursorName, "cursor")
)

const cursorSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" viewBox="0 0 24 24">` +
	`<path d="M4 2l16 9-7 2-3 7z" fill="%s" stroke="%s" stroke-width="1.5"/></svg>`

var cursorValues = map[settings.Cursor]string{
	settings.CursorBlack: cursorURL("#000000", "#ffffff"),
	settings.CursorWhite: cursorURL("#ffffff", "#000000"),
}

func cursorURL(fill, stroke string) string {
	svg := fmt.Sprintf(cursorSVG, fill, stroke)
	return `url("data:image/svg+xml;base64,` + base64.StdEncoding.EncodeToString([]byte(svg)) + `") 4 2, auto`
}

// Orientation returns the orientation family.
func Orientation(opts Options) []Applier {
	return []Applier{
		MuteSounds(),
		HideImages(),
		ReadMode(opts.ReadingBandPx),
		CursorTheme(),
		StopAnimations(),
	}
}

// MuteSounds mutes every audio and video element currently in the document.
// Elements the author already muted stay muted afterwards.
func MuteSounds() Accommodation[bool] {
	return New(muteSoundsName,
		func(t settings.Tree) bool { return t.Orientation.MuteSounds },
		func(doc ports.Document, on bool) Cleanup {
			unmute := func() {
				for _, el := range pageQuery(doc, soundTags...) {
					restoreAttr(el, mutedMarker, "muted")
				}
			}
			if !on {
				unmute()
				return noop
			}
			for _, el := range pageQuery(doc, soundTags...) {
				overrideAttr(el, mutedMarker, "muted")
			}
			return unmute
		})
}

// HideImages hides every image-like element currently in the document.
func HideImages() Accommodation[bool] {
	return New(hideImagesName,
		func(t settings.Tree) bool { return t.Orientation.HideImages },
		func(doc ports.Document, on bool) Cleanup {
			show := func() { restoreEach(pageQuery(doc, imageTags...), displayMarker, "display") }
			if !on {
				show()
				return noop
			}
			for _, el := range pageQuery(doc, imageTags...) {
				override(el, displayMarker, "display", "none")
			}
			return show
		})
}

// CursorTheme replaces the pointer with a large black or white arrow.
func CursorTheme() Accommodation[settings.Cursor] {
	return New(cursorName,
		func(t settings.Tree) settings.Cursor { return t.Orientation.Cursor },
		func(doc ports.Document, c settings.Cursor) Cleanup {
			undo := func() { restoreOn(doc.DocumentElement(), cursorMarker, "cursor") }
			value, ok := cursorValues[c]
			if !ok {
				undo()
				return noop
			}
			overrideOn(doc.DocumentElement(), cursorMarker, "cursor", value)
			return undo
		})
}

// StopAnimations suppresses CSS animations and transitions. It has its own
// boolean and does not follow the cursor setting.
func StopAnimations() Accommodation[bool] {
	return New(stopAnimationsName,
		func(t settings.Tree) bool { return t.Orientation.StopAnimations },
		func(doc ports.Document, on bool) Cleanup {
			if !on {
				removeByID(doc, StopAnimationsStyleID)
				return noop
			}
			return injectStyle(doc, stopAnimationsName, StopAnimationsStyleID, stopAnimationsCSS)
		})
}
