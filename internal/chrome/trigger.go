package chrome

import (
	"github.com/alexisbeaulieu97/accommodate/internal/accommodation"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// TriggerID is the reserved id of the floating trigger button.
const TriggerID = "a11y-trigger"

// RenderTrigger appends the floating trigger to doc, anchored to the edge
// named by widget.position. Any previous trigger is replaced. The returned
// function removes it.
func RenderTrigger(doc ports.Document, tree settings.Tree, translator ports.Translator) (remove func()) {
	removeTrigger(doc)
	body := doc.Body()
	if body == nil {
		return func() {}
	}

	label := "widget.trigger"
	if translator != nil {
		label = translator.Translate(label)
	}

	edge, other := "right", "left"
	if tree.Widget.Position == settings.PositionLeft {
		edge, other = "left", "right"
	}

	btn := doc.CreateElement("button")
	btn.SetAttr("id", TriggerID)
	btn.SetAttr("type", "button")
	btn.SetAttr(accommodation.OwnedAttr, "chrome")
	btn.SetAttr("aria-label", label)
	btn.SetAttr("data-position", string(tree.Widget.Position))
	btn.SetStyle("position", "fixed")
	btn.SetStyle("bottom", "1rem")
	btn.SetStyle(edge, "1rem")
	btn.SetStyle(other, "auto")
	btn.SetStyle("z-index", "2147483647")
	btn.SetText(label)
	body.Append(btn)

	return func() { removeTrigger(doc) }
}

func removeTrigger(doc ports.Document) {
	for {
		el, ok := doc.ElementByID(TriggerID)
		if !ok {
			return
		}
		el.Remove()
		if el.Connected() {
			return
		}
	}
}
