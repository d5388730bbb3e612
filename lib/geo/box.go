package geo

import (
	"fmt"
	"math"

	"oss.terrastruct.com/d2paint/lib/go2"
)

// Box is an axis aligned bounding box stored as its min and max corners.
type Box [2]Point

func NewBox(tl Point, width, height float64) Box {
	return Box{tl, NewPoint(tl.X+width, tl.Y+height)}
}

func (b Box) Min() Point { return b[0] }
func (b Box) Max() Point { return b[1] }

func (b Box) Width() float64 {
	return b[1].X - b[0].X
}

func (b Box) Height() float64 {
	return b[1].Y - b[0].Y
}

func (b Box) Center() Point {
	return NewPoint(b[0].X+b.Width()/2, b[0].Y+b.Height()/2)
}

// IsDegenerate reports whether the box has zero (or non-finite) area, in which
// case the unit square cannot be mapped onto it invertibly.
func (b Box) IsDegenerate() bool {
	a := b.Width() * b.Height()
	return a == 0 || math.IsNaN(a) || math.IsInf(a, 0)
}

// UnitTransform maps the unit square [0,1]² onto the box.
func (b Box) UnitTransform() Affine {
	return FromScaleAngleTranslation(b[1].Sub(b[0]), 0, b[0])
}

// Transform returns the axis aligned box around b's corners mapped through m.
func (b Box) Transform(m Affine) Box {
	corners := [4]Point{
		b[0],
		NewPoint(b[1].X, b[0].Y),
		b[1],
		NewPoint(b[0].X, b[1].Y),
	}
	p := m.TransformPoint(corners[0])
	out := Box{p, p}
	for _, c := range corners[1:] {
		out = out.Union(Box{m.TransformPoint(c), m.TransformPoint(c)})
	}
	return out
}

// Union is the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		NewPoint(go2.Min(b[0].X, o[0].X), go2.Min(b[0].Y, o[0].Y)),
		NewPoint(go2.Max(b[1].X, o[1].X), go2.Max(b[1].Y, o[1].Y)),
	}
}

func (b Box) ToString() string {
	return fmt.Sprintf("{Min: %s, Max: %s}", b[0].ToString(), b[1].ToString())
}
