package d2style

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/d2paint/lib/color"
	"oss.terrastruct.com/d2paint/lib/geo"
	"oss.terrastruct.com/d2paint/lib/svg"
)

type GradientKind int8

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

var gradientKindNames = []string{"linear", "radial"}

func (k GradientKind) String() string {
	return enumName(gradientKindNames, k)
}

func ParseGradientKind(s string) (GradientKind, error) {
	return parseEnum[GradientKind]("gradient kind", gradientKindNames, s)
}

// GradientStop is one point of a gradient ramp. A nil Color marks a stop that
// is kept in the list but not rendered.
type GradientStop struct {
	Offset float64      `json:"offset"`
	Color  *color.Color `json:"color"`
}

// Gradient is a linear or radial gradient between two anchor points given in
// the unit square of the shape's bounding box.
//
// Stops render in stored order; they are not sorted. ID names the def element
// and is assigned by the caller. It must stay the same across renders of the
// same gradient and be unique within a document.
type Gradient struct {
	Start     geo.Point      `json:"start"`
	End       geo.Point      `json:"end"`
	Transform geo.Affine     `json:"transform"`
	Stops     []GradientStop `json:"stops"`
	ID        uint64         `json:"id"`
	Kind      GradientKind   `json:"kind"`
}

// NewGradient returns a gradient with startColor at offset 0 and endColor at offset 1.
func NewGradient(start geo.Point, startColor color.Color, end geo.Point, endColor color.Color, transform geo.Affine, id uint64, kind GradientKind) Gradient {
	return Gradient{
		Start: start,
		End:   end,
		Stops: []GradientStop{
			{Offset: 0, Color: &startColor},
			{Offset: 1, Color: &endColor},
		},
		Transform: transform,
		ID:        id,
		Kind:      kind,
	}
}

// Copy deep copies the stops.
func (g Gradient) Copy() Gradient {
	stops := make([]GradientStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i].Offset = s.Offset
		if s.Color != nil {
			c := *s.Color
			stops[i].Color = &c
		}
	}
	g.Stops = stops
	return g
}

// RenderDefs appends the gradient's def element to defs.
//
// bounds is the shape's bounding box in local space and transformedBounds the
// same box in document space. Both must have non-zero area: degenerate boxes
// are not invertible and the output will contain NaN or inf.
func (g Gradient) RenderDefs(defs *strings.Builder, multipliedTransform geo.Affine, bounds, transformedBounds geo.Box) {
	boundTransform := bounds.UnitTransform()
	transformedBoundTransform := transformedBounds.UnitTransform()
	updatedTransform := multipliedTransform.Mul(boundTransform)

	modGradient := transformedBoundTransform.Inverse()
	// Do not simplify. Output rounding depends on this exact product.
	modPoints := modGradient.Inverse().Mul(transformedBoundTransform.Inverse()).Mul(updatedTransform)

	start := modPoints.TransformPoint(g.Start)
	end := modPoints.TransformPoint(g.End)

	transform := svg.Matrix(modGradient.ColsArray())

	stops := &strings.Builder{}
	for _, s := range g.Stops {
		if s.Color == nil {
			continue
		}
		fmt.Fprintf(stops, `<stop offset="%s" stop-color="#%s" />`, svg.Float(s.Offset), s.Color.RGBHex())
	}

	switch g.Kind {
	case GradientLinear:
		fmt.Fprintf(defs, `<linearGradient id="%d" x1="%s" x2="%s" y1="%s" y2="%s" gradientTransform="matrix(%s)">%s</linearGradient>`,
			g.ID, svg.Float(start.X), svg.Float(end.X), svg.Float(start.Y), svg.Float(end.Y), transform, stops.String())
	case GradientRadial:
		radius := start.DistanceTo(end)
		fmt.Fprintf(defs, `<radialGradient id="%d" cx="%s" cy="%s" r="%s" gradientTransform="matrix(%s)">%s</radialGradient>`,
			g.ID, svg.Float(start.X), svg.Float(start.Y), svg.Float(radius), transform, stops.String())
	default:
		panic(fmt.Sprintf("d2style: unknown gradient kind %d", g.Kind))
	}
}

// FirstColor is the color of the first stop, if it has one.
func (g Gradient) FirstColor() (color.Color, bool) {
	if len(g.Stops) == 0 || g.Stops[0].Color == nil {
		return color.Color{}, false
	}
	return *g.Stops[0].Color, true
}
