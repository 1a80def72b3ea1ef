package ports

// Element is a node of the live rendered document. Accommodation appliers only
// ever see elements through this interface so they can be exercised against
// any document implementation.
//
// Implementations must be forgiving: reading a missing attribute or style
// property yields the zero value, removing something that is not present is a
// no-op, and operations on an element that has been detached from the
// document succeed without effect on the live tree.
type Element interface {
	// Tag returns the lower-case element name (for example "a" or "h1").
	Tag() string

	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	// Style returns the inline style value for prop, or "" when unset.
	Style(prop string) string
	// SetStyle sets an inline style property. An empty value removes it.
	SetStyle(prop, value string)
	RemoveStyle(prop string)

	// SetText replaces the element's children with a single text node.
	SetText(text string)
	Text() string

	// Append moves child under this element as its last child.
	Append(child Element)
	// Remove detaches the element from its parent. Detached elements are skipped.
	Remove()
	// Connected reports whether the element is still reachable from the document root.
	Connected() bool
}

// Event is a document-level input event.
type Event struct {
	// Type is the event name, such as "keydown" or "pointermove".
	Type string
	// Key is the logical key for keyboard events ("Escape", "Enter", " ").
	Key string
	// ClientY is the pointer's vertical viewport coordinate for pointer events.
	ClientY int
}

// Listener handles one dispatched event.
type Listener func(Event)

// Document is the live document the engine mutates. It is the only shared
// mutable resource; every mutation an applier performs must be attributable to
// that applier through a marker attribute or a reserved element id.
type Document interface {
	// DocumentElement returns the root <html> element.
	DocumentElement() Element
	// Head returns the <head> element.
	Head() Element
	// Body returns the <body> element.
	Body() Element

	// Query returns every connected element whose tag is one of tags, in
	// document order. No match yields an empty slice.
	Query(tags ...string) []Element
	// BodyElements returns the body followed by every element below it in
	// document order.
	BodyElements() []Element
	// ElementByID finds the connected element with the given id attribute.
	ElementByID(id string) (Element, bool)
	// CreateElement creates a detached element.
	CreateElement(tag string) Element

	// AddEventListener registers l for eventType and returns the function
	// that removes it. Calling the returned function more than once is safe.
	AddEventListener(eventType string, l Listener) (remove func())
	// Dispatch delivers e to every listener registered for e.Type.
	Dispatch(e Event)
	// ListenerCount reports how many listeners are attached for eventType.
	ListenerCount(eventType string) int

	// ViewportHeight returns the height of the visible area in pixels.
	ViewportHeight() int
}
