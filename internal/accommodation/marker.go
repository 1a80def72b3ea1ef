package accommodation

import (
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// OwnedAttr tags elements the engine itself created (injected style blocks
// and overlay panels). Document-wide traversals skip them.
const OwnedAttr = "data-a11y-owned"

// marker names the attribute that preserves prop's original inline value for
// one applier, for example data-a11y-contrast-color.
func marker(applier, prop string) string {
	return "data-a11y-" + applier + "-" + prop
}

// override sets prop on el after capturing the pre-existing inline value into
// the marker attribute. Capture only happens when no marker is present, so
// re-applying never records an overridden value as the original. An empty
// marker records "no inline value".
func override(el ports.Element, markerAttr, prop, value string) {
	if _, marked := el.Attr(markerAttr); !marked {
		el.SetAttr(markerAttr, el.Style(prop))
	}
	el.SetStyle(prop, value)
}

// restore writes the captured value back and drops the marker. It reports
// whether el carried the marker.
func restore(el ports.Element, markerAttr, prop string) bool {
	original, marked := el.Attr(markerAttr)
	if !marked {
		return false
	}
	el.SetStyle(prop, original)
	el.RemoveAttr(markerAttr)
	return true
}

// restoreEach restores every element in elements that is still connected.
// Detached elements are skipped.
func restoreEach(elements []ports.Element, markerAttr, prop string) {
	for _, el := range elements {
		if el == nil || !el.Connected() {
			continue
		}
		restore(el, markerAttr, prop)
	}
}

// pageElements returns the body and its descendants minus engine-owned nodes.
func pageElements(doc ports.Document) []ports.Element {
	all := doc.BodyElements()
	out := make([]ports.Element, 0, len(all))
	for _, el := range all {
		if isOwned(el) {
			continue
		}
		out = append(out, el)
	}
	return out
}

func pageQuery(doc ports.Document, tags ...string) []ports.Element {
	found := doc.Query(tags...)
	out := make([]ports.Element, 0, len(found))
	for _, el := range found {
		if isOwned(el) {
			continue
		}
		out = append(out, el)
	}
	return out
}

func isOwned(el ports.Element) bool {
	_, owned := el.Attr(OwnedAttr)
	return owned
}

// overrideOn and restoreOn are override and restore for a single root
// element that may be missing.
func overrideOn(el ports.Element, markerAttr, prop, value string) {
	if el == nil {
		return
	}
	override(el, markerAttr, prop, value)
}

func restoreOn(el ports.Element, markerAttr, prop string) {
	if el == nil || !el.Connected() {
		return
	}
	restore(el, markerAttr, prop)
}

// Boolean attribute markers record "1" when the attribute was present.
const (
	attrPresent = "1"
	attrAbsent  = "0"
)

// overrideAttr sets the boolean attribute name on el, recording whether it
// was already present the first time.
func overrideAttr(el ports.Element, markerAttr, name string) {
	if _, marked := el.Attr(markerAttr); !marked {
		state := attrAbsent
		if _, present := el.Attr(name); present {
			state = attrPresent
		}
		el.SetAttr(markerAttr, state)
	}
	el.SetAttr(name, "")
}

// restoreAttr puts the boolean attribute back the way it was and drops the
// marker. Unmarked elements are left alone.
func restoreAttr(el ports.Element, markerAttr, name string) {
	if el == nil || !el.Connected() {
		return
	}
	state, marked := el.Attr(markerAttr)
	if !marked {
		return
	}
	if state != attrPresent {
		el.RemoveAttr(name)
	}
	el.RemoveAttr(markerAttr)
}
