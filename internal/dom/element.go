package dom

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// Element wraps an html.Node. Wrappers are cached per node so the same node
// always yields the same *Element.
type Element struct {
	doc  *Document
	node *html.Node
}

var _ ports.Element = (*Element)(nil)

// Tag implements ports.Element.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr implements ports.Element.
func (e *Element) Attr(name string) (string, bool) {
	return attr(e.node, name)
}

// SetAttr implements ports.Element.
func (e *Element) SetAttr(name, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr implements ports.Element.
func (e *Element) RemoveAttr(name string) {
	kept := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	e.node.Attr = kept
}

// Style implements ports.Element.
func (e *Element) Style(prop string) string {
	raw, _ := e.Attr("style")
	for _, decl := range parseStyle(raw) {
		if decl.prop == prop {
			return decl.value
		}
	}
	return ""
}

// SetStyle implements ports.Element.
func (e *Element) SetStyle(prop, value string) {
	if strings.TrimSpace(value) == "" {
		e.RemoveStyle(prop)
		return
	}
	raw, _ := e.Attr("style")
	decls := parseStyle(raw)
	replaced := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, declaration{prop: prop, value: value})
	}
	e.writeStyle(decls)
}

// RemoveStyle implements ports.Element.
func (e *Element) RemoveStyle(prop string) {
	raw, ok := e.Attr("style")
	if !ok {
		return
	}
	decls := parseStyle(raw)
	kept := decls[:0]
	for _, decl := range decls {
		if decl.prop != prop {
			kept = append(kept, decl)
		}
	}
	e.writeStyle(kept)
}

func (e *Element) writeStyle(decls []declaration) {
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", formatStyle(decls))
}

// SetText implements ports.Element.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text implements ports.Element.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// Append implements ports.Element. Elements from another document are ignored.
func (e *Element) Append(child ports.Element) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.doc != e.doc || c == e {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	e.node.AppendChild(c.node)
}

// Remove implements ports.Element.
func (e *Element) Remove() {
	if e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
}

// Connected implements ports.Element.
func (e *Element) Connected() bool {
	for n := e.node; n != nil; n = n.Parent {
		if n == e.doc.root {
			return true
		}
	}
	return false
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
