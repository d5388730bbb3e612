package svg

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
)

// OpacityPrecision is the number of digits kept after the decimal point in
// opacity attributes.
const OpacityPrecision = 3

// opacityEpsilon is 10^-OpacityPrecision. Alphas within it of 1 are treated as
// fully opaque, so a value is never written only to round to 1.000.
const opacityEpsilon float32 = 1e-3

// FormatOpacity returns ` {name}-opacity="{alpha}"` or "" when alpha is opaque.
func FormatOpacity(name string, alpha float32) string {
	if !(math32.Abs(alpha-1) > opacityEpsilon) {
		return ""
	}
	return " " + name + `-opacity="` + strconv.FormatFloat(float64(alpha), 'f', OpacityPrecision, 32) + `"`
}

// Float formats v in its shortest round-tripping decimal form, never using an
// exponent: 1 not 1.0, 0.000001 not 1e-06.
func Float(v float64) string {
	return formatFloat(v, 64)
}

// Float32 is Float for values that are float32 in the model.
func Float32(v float32) string {
	return formatFloat(float64(v), 32)
}

func formatFloat(v float64, bitSize int) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, bitSize)
}

// Matrix joins the six entries of an affine matrix, a,b,c,d,e,f, with commas
// for use inside matrix(...).
func Matrix(cols [6]float64) string {
	out := make([]byte, 0, 64)
	for i, v := range cols {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, Float(v)...)
	}
	return string(out)
}
