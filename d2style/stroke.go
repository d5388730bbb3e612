package d2style

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"oss.terrastruct.com/d2paint/lib/color"
	"oss.terrastruct.com/d2paint/lib/svg"
)

var (
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidDashLengths = errors.New("invalid dash lengths")
)

type LineCap int8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return fmt.Sprintf("LineCap(%d)", c)
}

var lineCapNames = []string{"butt", "round", "square"}

func ParseLineCap(s string) (LineCap, error) {
	return parseEnum[LineCap]("line cap", lineCapNames, s)
}

type LineJoin int8

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinBevel:
		return "bevel"
	case LineJoinRound:
		return "round"
	}
	return fmt.Sprintf("LineJoin(%d)", j)
}

var lineJoinNames = []string{"miter", "bevel", "round"}

func ParseLineJoin(s string) (LineJoin, error) {
	return parseEnum[LineJoin]("line join", lineJoinNames, s)
}

// Stroke is the paint and geometry of a shape's outline.
//
// Stroke is a value: the With methods return an updated copy and leave the
// receiver alone. A stroke without a color renders nothing, which is not the
// same as a stroke of zero weight.
type Stroke struct {
	color              color.Color
	hasColor           bool
	weight             float64
	dashLengths        []float32
	dashOffset         float64
	lineCap            LineCap
	lineJoin           LineJoin
	lineJoinMiterLimit float64
}

// DefaultStroke is a solid opaque black line of weight 0. The opaque alpha
// matters to property editors that start from it.
func DefaultStroke() Stroke {
	return Stroke{
		color:              color.FromRGBA8(0, 0, 0, 255),
		hasColor:           true,
		weight:             0,
		dashLengths:        []float32{0},
		dashOffset:         0,
		lineCap:            LineCapButt,
		lineJoin:           LineJoinMiter,
		lineJoinMiterLimit: 4,
	}
}

func NewStroke(c color.Color, weight float64) Stroke {
	s := DefaultStroke()
	s.color = c
	s.weight = weight
	return s
}

func (s Stroke) Color() (color.Color, bool) {
	return s.color, s.hasColor
}

func (s Stroke) Weight() float64 {
	return s.weight
}

// DashLengths is the dash pattern as written in stroke-dasharray.
func (s Stroke) DashLengths() string {
	parts := make([]string, len(s.dashLengths))
	for i, v := range s.dashLengths {
		parts[i] = svg.Float32(v)
	}
	return strings.Join(parts, ", ")
}

func (s Stroke) DashLengthValues() []float32 {
	return append([]float32(nil), s.dashLengths...)
}

func (s Stroke) DashOffset() float64 {
	return s.dashOffset
}

func (s Stroke) LineCap() LineCap {
	return s.lineCap
}

func (s Stroke) LineJoin() LineJoin {
	return s.lineJoin
}

func (s Stroke) LineCapIndex() uint32 {
	return uint32(s.lineCap)
}

func (s Stroke) LineJoinIndex() uint32 {
	return uint32(s.lineJoin)
}

func (s Stroke) LineJoinMiterLimit() float32 {
	return float32(s.lineJoinMiterLimit)
}

// Render returns the stroke attributes, or "" when the stroke has no color.
// The fragment starts and ends with a space.
func (s Stroke) Render() string {
	if !s.hasColor {
		return ""
	}
	return fmt.Sprintf(` stroke="#%s"%s stroke-width="%s" stroke-dasharray="%s" stroke-dashoffset="%s" stroke-linecap="%s" stroke-linejoin="%s" stroke-miterlimit="%s" `,
		s.color.RGBHex(),
		svg.FormatOpacity("stroke", s.color.A()),
		svg.Float(s.weight),
		s.DashLengths(),
		svg.Float(s.dashOffset),
		s.lineCap,
		s.lineJoin,
		svg.Float(s.lineJoinMiterLimit),
	)
}

// WithColor parses c as rrggbbaa, then as rrggbb. A nil c removes the color.
// On failure the error wraps ErrInvalidColor and s is returned unchanged.
func (s Stroke) WithColor(c *string) (Stroke, error) {
	if c == nil {
		s.color = color.Color{}
		s.hasColor = false
		return s, nil
	}
	parsed, ok := color.FromRGBAStr(*c)
	if !ok {
		parsed, ok = color.FromRGBStr(*c)
	}
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrInvalidColor, *c)
	}
	s.color = parsed
	s.hasColor = true
	return s, nil
}

func (s Stroke) WithWeight(weight float64) Stroke {
	s.weight = weight
	return s
}

// WithDashLengths parses a list of numbers separated by commas and/or spaces,
// e.g. "4, 2". Any bad token fails the whole list: the error wraps
// ErrInvalidDashLengths and s is returned unchanged.
func (s Stroke) WithDashLengths(dashLengths string) (Stroke, error) {
	fields := strings.FieldsFunc(dashLengths, func(r rune) bool {
		return r == ',' || r == ' '
	})
	lengths := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, ok := parseDashLength(f)
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrInvalidDashLengths, f)
		}
		lengths = append(lengths, v)
	}
	s.dashLengths = lengths
	return s, nil
}

// parseDashLength accepts decimal floats with an optional exponent, inf,
// infinity and nan, each optionally signed. Hex floats and digit separators
// are rejected. Out of range values become ±inf.
func parseDashLength(tok string) (float32, bool) {
	if strings.ContainsRune(tok, '_') {
		return 0, false
	}
	body := tok
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if strings.EqualFold(body, "nan") {
		return math32.NaN(), true
	}
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return float32(v), true
}

func (s Stroke) WithDashOffset(dashOffset float64) Stroke {
	s.dashOffset = dashOffset
	return s
}

func (s Stroke) WithLineCap(lineCap LineCap) Stroke {
	s.lineCap = lineCap
	return s
}

func (s Stroke) WithLineJoin(lineJoin LineJoin) Stroke {
	s.lineJoin = lineJoin
	return s
}

func (s Stroke) WithLineJoinMiterLimit(limit float64) Stroke {
	s.lineJoinMiterLimit = limit
	return s
}
