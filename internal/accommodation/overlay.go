package accommodation

import (
	"strconv"
	"sync"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

const readModeName = "readMode"

// Reserved ids of the reading mode panels.
const (
	ReadTopPanelID    = "a11y-read-top"
	ReadBottomPanelID = "a11y-read-bottom"
)

const pointerMove = "pointermove"

// readingOverlay tracks the live overlay per document so a repeated "on"
// never stacks a second pair of panels or a second pointer listener.
type readingOverlay struct {
	band int

	mu     sync.Mutex
	active map[ports.Document]*overlayHandle
}

type overlayHandle struct {
	once    sync.Once
	release func()
}

func (h *overlayHandle) close() {
	h.once.Do(h.release)
}

// ReadMode dims the viewport above and below a band that follows the pointer.
func ReadMode(bandPx int) Accommodation[bool] {
	if bandPx <= 0 {
		bandPx = DefaultReadingBandPx
	}
	o := &readingOverlay{band: bandPx, active: make(map[ports.Document]*overlayHandle)}
	return New(readModeName,
		func(t settings.Tree) bool { return t.Orientation.ReadMode },
		o.apply)
}

func (o *readingOverlay) apply(doc ports.Document, on bool) Cleanup {
	o.teardown(doc)
	if !on {
		return noop
	}

	body := doc.Body()
	if body == nil {
		return noop
	}

	// Stray panels from a previous owner of the document.
	removeByID(doc, ReadTopPanelID)
	removeByID(doc, ReadBottomPanelID)

	top := o.panel(doc, ReadTopPanelID, "top")
	bottom := o.panel(doc, ReadBottomPanelID, "bottom")
	body.Append(top)
	body.Append(bottom)

	layout := func(y int) {
		height := doc.ViewportHeight()
		half := o.band / 2
		top.SetStyle("height", px(clamp(y-half, 0, height)))
		bottom.SetStyle("height", px(clamp(height-(y+half), 0, height)))
	}
	layout(doc.ViewportHeight() / 2)

	removeListener := doc.AddEventListener(pointerMove, func(e ports.Event) {
		layout(e.ClientY)
	})

	handle := &overlayHandle{release: func() {
		removeListener()
		top.Remove()
		bottom.Remove()
	}}

	o.mu.Lock()
	o.active[doc] = handle
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		if o.active[doc] == handle {
			delete(o.active, doc)
		}
		o.mu.Unlock()
		handle.close()
	}
}

// teardown closes whichever overlay is currently live on doc.
func (o *readingOverlay) teardown(doc ports.Document) {
	o.mu.Lock()
	handle, ok := o.active[doc]
	delete(o.active, doc)
	o.mu.Unlock()
	if ok {
		handle.close()
	}
}

func (o *readingOverlay) panel(doc ports.Document, id, edge string) ports.Element {
	el := doc.CreateElement("div")
	el.SetAttr("id", id)
	el.SetAttr(OwnedAttr, readModeName)
	el.SetAttr("aria-hidden", "true")
	el.SetStyle("position", "fixed")
	el.SetStyle(edge, "0")
	el.SetStyle("left", "0")
	el.SetStyle("width", "100%")
	el.SetStyle("background-color", "rgba(0, 0, 0, 0.6)")
	el.SetStyle("pointer-events", "none")
	el.SetStyle("z-index", "2147483646")
	return el
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}
