// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

// DefaultIDPrefix prefixes generated element ids.
const DefaultIDPrefix = "picker"

// IDAllocator hands out increasing ids. Each Root owns one, so separate
// documents never share counter state.
type IDAllocator struct {
	next uint64
}

// Next returns the next id.
func (a *IDAllocator) Next() uint64 {
	id := a.next
	a.next++
	return id
}

// Peek returns the id Next would return, without allocating it.
func (a *IDAllocator) Peek() uint64 {
	return a.next
}

// RootOption configures a Root.
type RootOption func(*rootOptions)

type rootOptions struct {
	idPrefix string
}

func defaultRootOptions() rootOptions {
	return rootOptions{idPrefix: DefaultIDPrefix}
}

// WithIDPrefix sets the prefix of generated ids. Documents embedded in
// the same page should use different prefixes.
func WithIDPrefix(prefix string) RootOption {
	return func(o *rootOptions) {
		if prefix != "" {
			o.idPrefix = prefix
		}
	}
}

// Root is the <svg> element of a document together with its shared
// <defs> container and id allocator.
//
// Root is not safe for concurrent use.
type Root struct {
	*Node

	defs   *Node
	ids    IDAllocator
	prefix string
}

// New creates a document of the given size.
func New(width, height float64, opts ...RootOption) *Root {
	o := defaultRootOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Root{prefix: o.idPrefix}
	r.Node = newNode(r, nil, "svg", Attrs{
		"width":  width,
		"height": height,
		"style":  "display:block;overflow:hidden;",
	})
	r.defs = r.Insert("defs", nil)
	return r
}

// Defs returns the shared definitions container.
func (r *Root) Defs() *Node { return r.defs }

// IDs returns the root's id allocator.
func (r *Root) IDs() *IDAllocator { return &r.ids }

// IDPrefix returns the prefix of generated ids.
func (r *Root) IDPrefix() string { return r.prefix }
