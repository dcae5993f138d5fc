// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a physical element attribute.
type Attr struct {
	Name, Value string
}

// Element is a node of the SVG document tree. A parent owns its children;
// removing an element from its parent detaches the whole subtree.
type Element struct {
	name       string
	attrs      []Attr
	children   []*Element
	parent     *Element
	transforms TransformList
}

// CreateElement returns a detached element with the given tag name.
func CreateElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// ID returns the id attribute, or "" if unset.
func (e *Element) ID() string {
	id, _ := e.Attribute("id")
	return id
}

// SetAttribute sets an attribute, keeping the position of an existing one.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttribute deletes the named attribute.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Attrs returns a copy of the attributes in the order they were first set.
func (e *Element) Attrs() []Attr {
	return append([]Attr(nil), e.attrs...)
}

// AppendChild appends child as the last child of e, detaching it from its
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// Parent returns the parent element, or nil for a detached element.
func (e *Element) Parent() *Element { return e.parent }

// Transform returns the element's transform list.
func (e *Element) Transform() *TransformList { return &e.transforms }
