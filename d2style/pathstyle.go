package d2style

import (
	"strings"

	"oss.terrastruct.com/d2paint/lib/geo"
)

// PathStyle is the complete paint of a path: an optional stroke and a fill.
// The zero value has no stroke and no fill.
type PathStyle struct {
	stroke *Stroke
	fill   Fill
}

func NewPathStyle(stroke *Stroke, fill Fill) PathStyle {
	ps := PathStyle{fill: fill}
	if stroke != nil {
		ps.SetStroke(*stroke)
	}
	return ps
}

func (ps PathStyle) Fill() Fill {
	return ps.fill
}

// Stroke returns a copy of the stroke, ok is false if there is none.
func (ps PathStyle) Stroke() (s Stroke, ok bool) {
	if ps.stroke == nil {
		return Stroke{}, false
	}
	return *ps.stroke, true
}

func (ps *PathStyle) SetFill(fill Fill) {
	ps.fill = fill
}

func (ps *PathStyle) SetStroke(stroke Stroke) {
	ps.stroke = &stroke
}

func (ps *PathStyle) ClearFill() {
	ps.fill = NoFill()
}

func (ps *PathStyle) ClearStroke() {
	ps.stroke = nil
}

// Render returns the fill attributes followed by the stroke attributes.
// Gradient fills append their def to defs.
//
// In ViewModeOutline the shape's own paint is ignored: there is no fill and
// the stroke is OutlineStrokeWeight wide in OutlineStrokeColor.
func (ps PathStyle) Render(viewMode ViewMode, defs *strings.Builder, multipliedTransform geo.Affine, bounds, transformedBounds geo.Box) string {
	var fill, stroke string
	switch viewMode {
	case ViewModeOutline:
		fill = NoFill().Render(defs, multipliedTransform, bounds, transformedBounds)
		stroke = NewStroke(OutlineStrokeColor, OutlineStrokeWeight).Render()
	default:
		fill = ps.fill.Render(defs, multipliedTransform, bounds, transformedBounds)
		if ps.stroke != nil {
			stroke = ps.stroke.Render()
		}
	}
	return fill + stroke
}
