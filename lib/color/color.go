// Package color is the RGBA color value used by styles.
//
// Components are stored as float32 in [0, 1]. Hex strings are written without
// the leading '#'.
package color

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// None is the paint keyword for no paint.
const None = "none"

type Color struct {
	red   float32
	green float32
	blue  float32
	alpha float32
}

var (
	Black = FromRGBA8(0, 0, 0, 255)
	White = FromRGBA8(255, 255, 255, 255)
	Red   = FromRGBA8(255, 0, 0, 255)
	Green = FromRGBA8(0, 255, 0, 255)
	Blue  = FromRGBA8(0, 0, 255, 255)
)

// FromRGBAF32 returns ok=false if any component is outside [0, 1] or NaN.
func FromRGBAF32(r, g, b, a float32) (Color, bool) {
	for _, c := range [4]float32{r, g, b, a} {
		if !(c >= 0 && c <= 1) {
			return Color{}, false
		}
	}
	return Color{r, g, b, a}, true
}

func FromRGBA8(r, g, b, a uint8) Color {
	return Color{
		red:   float32(r) / 255,
		green: float32(g) / 255,
		blue:  float32(b) / 255,
		alpha: float32(a) / 255,
	}
}

func FromRGB8(r, g, b uint8) Color {
	return FromRGBA8(r, g, b, 255)
}

// FromRGBAStr parses exactly 8 hex digits, rrggbbaa.
func FromRGBAStr(s string) (Color, bool) {
	if len(s) != 8 {
		return Color{}, false
	}
	var c [4]uint8
	for i := range c {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		c[i] = uint8(v)
	}
	return FromRGBA8(c[0], c[1], c[2], c[3]), true
}

// FromRGBStr parses exactly 6 hex digits, rrggbb, as an opaque color.
func FromRGBStr(s string) (Color, bool) {
	if len(s) != 6 {
		return Color{}, false
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return Color{}, false
		}
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return Color{}, false
	}
	return FromRGB8(c.RGB255()), true
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// Parse accepts any CSS color syntax: named colors, #rgb, #rrggbbaa, rgb(), hsl() and so on.
// Bare 6 or 8 digit hex without '#' is accepted too.
func Parse(s string) (Color, error) {
	if c, ok := FromRGBAStr(s); ok {
		return c, nil
	}
	if c, ok := FromRGBStr(s); ok {
		return c, nil
	}
	cc, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c, ok := FromRGBAF32(float32(cc.R), float32(cc.G), float32(cc.B), float32(cc.A))
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q: component out of range", s)
	}
	return c, nil
}

func (c Color) R() float32 { return c.red }
func (c Color) G() float32 { return c.green }
func (c Color) B() float32 { return c.blue }
func (c Color) A() float32 { return c.alpha }

// RGBHex truncates each component to 8 bits.
func (c Color) RGBHex() string {
	return fmt.Sprintf("%02x%02x%02x", to8(c.red), to8(c.green), to8(c.blue))
}

func (c Color) RGBAHex() string {
	return fmt.Sprintf("%02x%02x%02x%02x", to8(c.red), to8(c.green), to8(c.blue), to8(c.alpha))
}

// to8 saturates out of range values and maps NaN to 0.
func to8(v float32) uint8 {
	v *= 255
	switch {
	case v != v, v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.RGBAHex())
}

func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
