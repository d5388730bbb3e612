// Package d2style turns the paint of a vector shape (fill, stroke and
// gradients) into SVG attribute fragments.
//
// Fragments are meant to be concatenated straight into an element's opening
// tag. Gradients additionally append a def element to a caller supplied defs
// buffer, which belongs inside <defs>. Nothing in this package synchronizes:
// concurrent renders need their own defs buffers.
package d2style

import (
	"fmt"

	"oss.terrastruct.com/d2paint/lib/color"
)

// Paint used for every shape in ViewModeOutline.
var (
	OutlineStrokeColor = color.Black
)

const OutlineStrokeWeight = 1.

type ViewMode int8

const (
	// ViewModeNormal renders with normal coloration at the viewport resolution.
	ViewModeNormal ViewMode = iota
	// ViewModeOutline renders only the outlines of shapes.
	ViewModeOutline
	// ViewModePixels renders like ViewModeNormal; resolution handling happens elsewhere.
	ViewModePixels
)

var viewModeNames = []string{"normal", "outline", "pixels"}

func (m ViewMode) String() string {
	return enumName(viewModeNames, m)
}

func ParseViewMode(s string) (ViewMode, error) {
	return parseEnum[ViewMode]("view mode", viewModeNames, s)
}

func enumName[T ~int8](names []string, v T) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%T(%d)", v, v)
	}
	return names[v]
}

func parseEnum[T ~int8](kind string, names []string, s string) (T, error) {
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q, expected one of %q", kind, s, names)
}
