package d2style

import (
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/d2paint/lib/color"
)

func (m ViewMode) MarshalText() ([]byte, error) { return marshalEnum(viewModeNames, m) }
func (m *ViewMode) UnmarshalText(b []byte) (err error) {
	*m, err = ParseViewMode(string(b))
	return err
}

func (k GradientKind) MarshalText() ([]byte, error) { return marshalEnum(gradientKindNames, k) }
func (k *GradientKind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseGradientKind(string(b))
	return err
}

func (c LineCap) MarshalText() ([]byte, error) { return marshalEnum(lineCapNames, c) }
func (c *LineCap) UnmarshalText(b []byte) (err error) {
	*c, err = ParseLineCap(string(b))
	return err
}

func (j LineJoin) MarshalText() ([]byte, error) { return marshalEnum(lineJoinNames, j) }
func (j *LineJoin) UnmarshalText(b []byte) (err error) {
	*j, err = ParseLineJoin(string(b))
	return err
}

func marshalEnum[T ~int8](names []string, v T) ([]byte, error) {
	if v < 0 || int(v) >= len(names) {
		return nil, fmt.Errorf("cannot marshal %T(%d)", v, v)
	}
	return []byte(names[v]), nil
}

type serializedFill struct {
	Type     string       `json:"type"`
	Color    *color.Color `json:"color,omitempty"`
	Gradient *Gradient    `json:"gradient,omitempty"`
}

func (f Fill) MarshalJSON() ([]byte, error) {
	sf := serializedFill{Type: f.typ.String()}
	switch f.typ {
	case FillNone:
	case FillSolid:
		sf.Color = &f.solid
	case FillGradient:
		sf.Gradient = &f.gradient
	default:
		return nil, fmt.Errorf("cannot marshal fill type %d", f.typ)
	}
	return json.Marshal(sf)
}

func (f *Fill) UnmarshalJSON(b []byte) error {
	var sf serializedFill
	if err := json.Unmarshal(b, &sf); err != nil {
		return err
	}
	switch sf.Type {
	case "", "none":
		*f = NoFill()
	case "solid":
		if sf.Color == nil {
			return fmt.Errorf("solid fill is missing its color")
		}
		*f = Solid(*sf.Color)
	case "gradient":
		if sf.Gradient == nil {
			return fmt.Errorf("gradient fill is missing its gradient")
		}
		*f = FromGradient(*sf.Gradient)
	default:
		return fmt.Errorf("unknown fill type %q, expected one of %q", sf.Type, fillTypeNames)
	}
	return nil
}

// serializedStroke uses a nil Color for a stroke without color.
type serializedStroke struct {
	Color              *color.Color `json:"color"`
	Weight             float64      `json:"weight"`
	DashLengths        []float32    `json:"dash_lengths"`
	DashOffset         float64      `json:"dash_offset"`
	LineCap            LineCap      `json:"line_cap"`
	LineJoin           LineJoin     `json:"line_join"`
	LineJoinMiterLimit float64      `json:"line_join_miter_limit"`
}

func (s Stroke) MarshalJSON() ([]byte, error) {
	ss := serializedStroke{
		Weight:             s.weight,
		DashLengths:        s.DashLengthValues(),
		DashOffset:         s.dashOffset,
		LineCap:            s.lineCap,
		LineJoin:           s.lineJoin,
		LineJoinMiterLimit: s.lineJoinMiterLimit,
	}
	if s.hasColor {
		ss.Color = &s.color
	}
	return json.Marshal(ss)
}

// UnmarshalJSON fills fields missing from b with DefaultStroke's values.
func (s *Stroke) UnmarshalJSON(b []byte) error {
	d := DefaultStroke()
	ss := serializedStroke{
		Color:              &d.color,
		Weight:             d.weight,
		DashLengths:        d.dashLengths,
		DashOffset:         d.dashOffset,
		LineCap:            d.lineCap,
		LineJoin:           d.lineJoin,
		LineJoinMiterLimit: d.lineJoinMiterLimit,
	}
	if err := json.Unmarshal(b, &ss); err != nil {
		return err
	}
	*s = Stroke{
		weight:             ss.Weight,
		dashLengths:        ss.DashLengths,
		dashOffset:         ss.DashOffset,
		lineCap:            ss.LineCap,
		lineJoin:           ss.LineJoin,
		lineJoinMiterLimit: ss.LineJoinMiterLimit,
	}
	if ss.Color != nil {
		s.color = *ss.Color
		s.hasColor = true
	}
	return nil
}

type serializedPathStyle struct {
	Stroke *Stroke `json:"stroke"`
	Fill   Fill    `json:"fill"`
}

func (ps PathStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedPathStyle{Stroke: ps.stroke, Fill: ps.fill})
}

func (ps *PathStyle) UnmarshalJSON(b []byte) error {
	var sps serializedPathStyle
	if err := json.Unmarshal(b, &sps); err != nil {
		return err
	}
	*ps = NewPathStyle(sps.Stroke, sps.Fill)
	return nil
}
