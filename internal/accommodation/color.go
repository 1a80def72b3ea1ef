package accommodation

import (
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const (
	contrastName   = "contrast"
	saturationName = "saturation"
	monochromeName = "monochrome"
)

type palette struct {
	background string
	foreground string
}

var contrastPalettes = map[settings.Contrast]palette{
	settings.ContrastDark:  {background: "#121212", foreground: "#f5f5f5"},
	settings.ContrastLight: {background: "#ffffff", foreground: "#111111"},
	settings.ContrastHigh:  {background: "#000000", foreground: "#ffff00"},
}

var saturationFilters = map[settings.Saturation]string{
	settings.SaturationLow:  "saturate(50%)",
	settings.SaturationHigh: "saturate(200%)",
}

var (
	contrastBackgroundMarker = marker(contrastName, "background-color")
	contrastColorMarker      = marker(contrastName, "color")
	saturationMarker         = marker(saturationName, "filter")
	monochromeMarker         = marker(monochromeName, "filter")
)

// Colors returns the color family.
func Colors() []Applier {
	return []Applier{ContrastTheme(), Saturation(), Monochrome()}
}

// ContrastTheme repaints every page element with the selected palette,
// preserving each element's own inline colors in marker attributes.
func ContrastTheme() Accommodation[settings.Contrast] {
	return New(contrastName,
		func(t settings.Tree) settings.Contrast { return t.Colors.Contrast },
		applyContrast)
}

func applyContrast(doc ports.Document, c settings.Contrast) Cleanup {
	p, ok := contrastPalettes[c]
	if !ok {
		restoreContrast(doc)
		return noop
	}
	for _, el := range pageElements(doc) {
		override(el, contrastBackgroundMarker, "background-color", p.background)
		override(el, contrastColorMarker, "color", p.foreground)
	}
	return func() { restoreContrast(doc) }
}

func restoreContrast(doc ports.Document) {
	elements := pageElements(doc)
	restoreEach(elements, contrastBackgroundMarker, "background-color")
	restoreEach(elements, contrastColorMarker, "color")
}

// Saturation filters the body. The body's own filter is kept in a marker and
// written back when saturation returns to default.
func Saturation() Accommodation[settings.Saturation] {
	return New(saturationName,
		func(t settings.Tree) settings.Saturation { return t.Colors.Saturation },
		func(doc ports.Document, s settings.Saturation) Cleanup {
			undo := func() { restoreOn(doc.Body(), saturationMarker, "filter") }
			value, ok := saturationFilters[s]
			if !ok {
				undo()
				return noop
			}
			overrideOn(doc.Body(), saturationMarker, "filter", value)
			return undo
		})
}

// Monochrome renders the whole document in grayscale.
func Monochrome() Accommodation[bool] {
	return New(monochromeName,
		func(t settings.Tree) bool { return t.Colors.Monochrome },
		func(doc ports.Document, on bool) Cleanup {
			undo := func() { restoreOn(doc.DocumentElement(), monochromeMarker, "filter") }
			if !on {
				undo()
				return noop
			}
			overrideOn(doc.DocumentElement(), monochromeMarker, "filter", "grayscale(100%)")
			return undo
		})
}
