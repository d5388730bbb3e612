package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// Affine is a 2D affine transformation in SVG matrix order:
//
//	| A  C  E |
//	| B  D  F |
//
// that is x' = A*x + C*y + E and y' = B*x + D*y + F. Columns (A, B) and (C, D)
// are the images of the x and y axes, (E, F) is the translation.
//
// Products are wrapped in float64 conversions so the compiler never fuses them
// into FMA instructions; results are bit for bit the same on every platform.
type Affine struct {
	A, B, C, D, E, F float64
}

func Identity() Affine {
	return Affine{A: 1, D: 1}
}

func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

func Scale(x, y float64) Affine {
	return Affine{A: x, D: y}
}

// FromScaleAngleTranslation scales, then rotates by angle (radians), then translates.
func FromScaleAngleTranslation(scale Point, angle float64, translation Point) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		A: cos * scale.X,
		B: sin * scale.X,
		C: -sin * scale.Y,
		D: cos * scale.Y,
		E: translation.X,
		F: translation.Y,
	}
}

// FromColsArray is the inverse of ColsArray.
func FromColsArray(v [6]float64) Affine {
	return Affine{v[0], v[1], v[2], v[3], v[4], v[5]}
}

// ColsArray flattens the matrix column by column: a, b, c, d, e, f.
func (m Affine) ColsArray() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Mul returns m · n, the transform applying n first and then m.
func (m Affine) Mul(n Affine) Affine {
	a, b := m.mulVec(n.A, n.B)
	c, d := m.mulVec(n.C, n.D)
	e, f := m.mulVec(n.E, n.F)
	return Affine{
		A: a, B: b,
		C: c, D: d,
		E: e + m.E, F: f + m.F,
	}
}

// mulVec applies only the linear part.
func (m Affine) mulVec(x, y float64) (float64, float64) {
	return float64(m.A*x) + float64(m.C*y), float64(m.B*x) + float64(m.D*y)
}

func (m Affine) TransformPoint(p Point) Point {
	x, y := m.mulVec(p.X, p.Y)
	return Point{X: x + m.E, Y: y + m.F}
}

func (m Affine) TransformVector(p Point) Point {
	x, y := m.mulVec(p.X, p.Y)
	return Point{X: x, Y: y}
}

func (m Affine) Determinant() float64 {
	return float64(m.A*m.D) - float64(m.C*m.B)
}

// Inverse does not check for singular matrices: a zero determinant yields
// infinite or NaN entries.
func (m Affine) Inverse() Affine {
	invDet := 1 / m.Determinant()
	inv := Affine{
		A: m.D * invDet,
		B: m.B * -invDet,
		C: m.C * -invDet,
		D: m.A * invDet,
	}
	e, f := inv.mulVec(m.E, m.F)
	inv.E = -e
	inv.F = -f
	return inv
}

func (m Affine) IsIdentity() bool {
	return m == Identity()
}

func (m Affine) IsFinite() bool {
	for _, v := range m.ColsArray() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (m Affine) ToString() string {
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", m.A, m.B, m.C, m.D, m.E, m.F)
}

func (m Affine) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ColsArray())
}

// UnmarshalJSON leaves m unchanged for null.
func (m *Affine) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("invalid affine transform %s: %w", b, err)
	}
	if len(v) != 6 {
		return fmt.Errorf("invalid affine transform %s: expected 6 entries, got %d", b, len(v))
	}
	*m = FromColsArray([6]float64(v))
	return nil
}
