// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// WriteTo writes the document as compact XML. It implements io.WriterTo.
func (r *Root) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := r.WriteXML(cw, false)
	return cw.n, err
}

// WriteXML writes the document, indented with two spaces if indent is set.
func (r *Root) WriteXML(w io.Writer, indent bool) error {
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	if err := encodeElement(enc, r.el, true); err != nil {
		return err
	}
	return enc.Flush()
}

// String returns the document as compact XML.
func (r *Root) String() string {
	var buf bytes.Buffer
	_ = r.WriteXML(&buf, false)
	return buf.String()
}

func encodeElement(enc *xml.Encoder, e *Element, root bool) error {
	start := xml.StartElement{Name: xml.Name{Local: e.name}}
	if root {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: Namespace})
	}
	// A raw transform attribute and the transform list describe one
	// attribute; the list's entries follow the raw value.
	merged := false
	for _, a := range e.attrs {
		value := a.Value
		if a.Name == "transform" && e.transforms.Len() > 0 {
			value = joinTransforms(value, e.transforms.String())
			merged = true
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: value})
	}
	if !merged && e.transforms.Len() > 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "transform"}, Value: e.transforms.String()})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.children {
		if err := encodeElement(enc, c, false); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func joinTransforms(raw, list string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return list
	}
	return raw + " " + list
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
