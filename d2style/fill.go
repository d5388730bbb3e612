package d2style

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/d2paint/lib/color"
	"oss.terrastruct.com/d2paint/lib/geo"
	"oss.terrastruct.com/d2paint/lib/svg"
)

type FillType int8

const (
	FillNone FillType = iota
	FillSolid
	FillGradient
)

var fillTypeNames = []string{"none", "solid", "gradient"}

func (t FillType) String() string {
	return enumName(fillTypeNames, t)
}

// Fill is the paint of a shape's interior: nothing, a solid color or a
// gradient. The zero value is no fill.
type Fill struct {
	typ      FillType
	solid    color.Color
	gradient Gradient
}

func NoFill() Fill {
	return Fill{}
}

func Solid(c color.Color) Fill {
	return Fill{typ: FillSolid, solid: c}
}

func FromGradient(g Gradient) Fill {
	return Fill{typ: FillGradient, gradient: g}
}

func (f Fill) Type() FillType {
	return f.typ
}

func (f Fill) SolidColor() (color.Color, bool) {
	return f.solid, f.typ == FillSolid
}

func (f Fill) Gradient() (Gradient, bool) {
	if f.typ != FillGradient {
		return Gradient{}, false
	}
	return f.gradient, true
}

// Color evaluates the fill to a single color. Gradients are not sampled:
// they report their first stop's color, or black.
func (f Fill) Color() color.Color {
	switch f.typ {
	case FillSolid:
		return f.solid
	case FillGradient:
		if c, ok := f.gradient.FirstColor(); ok {
			return c
		}
		return color.Black
	default:
		return color.Black
	}
}

// Render returns the fill attribute, appending the gradient def to defs for
// gradient fills.
func (f Fill) Render(defs *strings.Builder, multipliedTransform geo.Affine, bounds, transformedBounds geo.Box) string {
	switch f.typ {
	case FillNone:
		return ` fill="` + color.None + `"`
	case FillSolid:
		return fmt.Sprintf(` fill="#%s"%s`, f.solid.RGBHex(), svg.FormatOpacity("fill", f.solid.A()))
	case FillGradient:
		f.gradient.RenderDefs(defs, multipliedTransform, bounds, transformedBounds)
		return fmt.Sprintf(` fill="url('#%d')"`, f.gradient.ID)
	default:
		panic(fmt.Sprintf("d2style: unknown fill type %d", f.typ))
	}
}

func (f Fill) IsSome() bool {
	return f.typ != FillNone
}
