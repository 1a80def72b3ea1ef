package accommodation

import (
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// injectStyle installs a singleton <style> block with the reserved id. Any
// existing block with that id is removed first, so at most one exists.
func injectStyle(doc ports.Document, owner, id, css string) Cleanup {
	removeByID(doc, id)

	head := doc.Head()
	if head == nil {
		return noop
	}
	el := doc.CreateElement("style")
	el.SetAttr("id", id)
	el.SetAttr(OwnedAttr, owner)
	el.SetText(css)
	head.Append(el)

	return func() { removeByID(doc, id) }
}

// removeByID detaches every element carrying id.
func removeByID(doc ports.Document, id string) {
	for {
		el, ok := doc.ElementByID(id)
		if !ok {
			return
		}
		el.Remove()
		if el.Connected() {
			// Removal had no effect; bail out rather than loop forever.
			return
		}
	}
}
