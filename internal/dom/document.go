// Package dom implements the live document on top of golang.org/x/net/html
// node trees. Inline styles are kept in the element's style attribute so the
// rendered markup always reflects the current state.
package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// DefaultViewportHeight is used when the host does not report a viewport.
const DefaultViewportHeight = 800

// Document is a mutable HTML document.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element

	mu        sync.Mutex
	listeners map[string][]listenerEntry
	nextID    uint64

	viewportHeight int
}

var _ ports.Document = (*Document)(nil)

type listenerEntry struct {
	id uint64
	fn ports.Listener
}

// Option configures a Document.
type Option func(*Document)

// WithViewportHeight sets the visible height used by overlay appliers.
func WithViewportHeight(px int) Option {
	return func(d *Document) {
		if px > 0 {
			d.viewportHeight = px
		}
	}
}

// Parse reads an HTML document. The parser always synthesizes html, head and
// body elements, so those accessors never return nil.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{
		root:           root,
		elements:       make(map[*html.Node]*Element),
		listeners:      make(map[string][]listenerEntry),
		viewportHeight: DefaultViewportHeight,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(markup string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), opts...)
}

// New returns an empty document.
func New(opts ...Option) *Document {
	d, err := ParseString("", opts...)
	if err != nil {
		// The tokenizer cannot fail on empty input.
		panic(err)
	}
	return d
}

// Render writes the current document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" if rendering fails.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

func (d *Document) find(a atom.Atom) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return false
		}
		return true
	})
	return found
}

// DocumentElement implements ports.Document.
func (d *Document) DocumentElement() ports.Element {
	return d.wrap(d.find(atom.Html))
}

// Head implements ports.Document.
func (d *Document) Head() ports.Element {
	return d.wrap(d.find(atom.Head))
}

// Body implements ports.Document.
func (d *Document) Body() ports.Element {
	return d.wrap(d.find(atom.Body))
}

// Query implements ports.Document.
func (d *Document) Query(tags ...string) []ports.Element {
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(tag)] = struct{}{}
	}
	out := []ports.Element{}
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if _, ok := wanted[n.Data]; ok {
				out = append(out, d.wrap(n))
			}
		}
		return true
	})
	return out
}

// BodyElements implements ports.Document.
func (d *Document) BodyElements() []ports.Element {
	body := d.find(atom.Body)
	out := []ports.Element{}
	if body == nil {
		return out
	}
	walk(body, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			out = append(out, d.wrap(n))
		}
		return true
	})
	return out
}

// ElementByID implements ports.Document.
func (d *Document) ElementByID(id string) (ports.Element, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

// CreateElement implements ports.Document.
func (d *Document) CreateElement(tag string) ports.Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return d.wrap(n)
}

// AddEventListener implements ports.Document.
func (d *Document) AddEventListener(eventType string, l ports.Listener) func() {
	if l == nil {
		return func() {}
	}
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], listenerEntry{id: id, fn: l})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			entries := d.listeners[eventType]
			for i, entry := range entries {
				if entry.id == id {
					d.listeners[eventType] = append(entries[:i:i], entries[i+1:]...)
					break
				}
			}
			if len(d.listeners[eventType]) == 0 {
				delete(d.listeners, eventType)
			}
		})
	}
}

// Dispatch implements ports.Document. Listeners added or removed while an
// event is being delivered take effect from the next dispatch.
func (d *Document) Dispatch(e ports.Event) {
	d.mu.Lock()
	entries := append([]listenerEntry(nil), d.listeners[e.Type]...)
	d.mu.Unlock()

	for _, entry := range entries {
		entry.fn(e)
	}
}

// ListenerCount implements ports.Document.
func (d *Document) ListenerCount(eventType string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[eventType])
}

// ViewportHeight implements ports.Document.
func (d *Document) ViewportHeight() int {
	return d.viewportHeight
}

// SetViewportHeight updates the visible height, for example on a resize.
func (d *Document) SetViewportHeight(px int) {
	if px > 0 {
		d.viewportHeight = px
	}
}

// walk visits n and its descendants depth-first in document order until fn
// returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
