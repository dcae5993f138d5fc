// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/picker"
)

// Attribute enumerates the logical attribute names that differ from, or
// are normalized to, their physical SVG names.
type Attribute uint8

const (
	AttrClass Attribute = iota + 1
	AttrStroke
	AttrStrokeWidth
	AttrFill
	AttrOpacity
	AttrOffset
	AttrStopColor
	AttrStopOpacity
)

// String returns the physical SVG attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrClass:
		return "class"
	case AttrStroke:
		return "stroke"
	case AttrStrokeWidth:
		return "stroke-width"
	case AttrFill:
		return "fill"
	case AttrOpacity:
		return "opacity"
	case AttrOffset:
		return "offset"
	case AttrStopColor:
		return "stop-color"
	case AttrStopOpacity:
		return "stop-opacity"
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// Logical returns the camel-case name callers use in Attrs.
func (a Attribute) Logical() string {
	switch a {
	case AttrStrokeWidth:
		return "strokeWidth"
	case AttrStopColor:
		return "stopColor"
	case AttrStopOpacity:
		return "stopOpacity"
	}
	return a.String()
}

// LookupAttribute finds the Attribute for a logical name.
func LookupAttribute(logical string) (Attribute, bool) {
	switch logical {
	case "class":
		return AttrClass, true
	case "stroke":
		return AttrStroke, true
	case "strokeWidth":
		return AttrStrokeWidth, true
	case "fill":
		return AttrFill, true
	case "opacity":
		return AttrOpacity, true
	case "offset":
		return AttrOffset, true
	case "stopColor":
		return AttrStopColor, true
	case "stopOpacity":
		return AttrStopOpacity, true
	}
	return 0, false
}

// AttributeName maps a logical name to its physical name. Names outside
// the shorthand table are returned unchanged.
func AttributeName(logical string) string {
	if a, ok := LookupAttribute(logical); ok {
		return a.String()
	}
	return logical
}

// FormatValue renders an attribute value. Numbers use the shortest decimal
// form that round-trips; colors render as "#rrggbb".
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case picker.RGBA:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// formatNumber formats like a JavaScript number: plain decimals for
// ordinary magnitudes, exponent notation for very small or large ones.
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // also folds -0
	}
	abs := math.Abs(v)
	if abs < 1e-6 || abs >= 1e21 {
		// Go pads the exponent to two digits ("1e-07"); JavaScript does not.
		m, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return m + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
