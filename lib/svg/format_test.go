package svg_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/d2paint/lib/svg"
)

func TestFormatOpacity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		alpha float32
		exp   string
	}{
		{name: "opaque", alpha: 1, exp: ""},
		{name: "near_opaque", alpha: 0.9995, exp: ""},
		{name: "half", alpha: 0.5, exp: ` fill-opacity="0.500"`},
		{name: "transparent", alpha: 0, exp: ` fill-opacity="0.000"`},
		{name: "rounded", alpha: 0.12345, exp: ` fill-opacity="0.123"`},
		{name: "just_below_threshold", alpha: 0.998, exp: ` fill-opacity="0.998"`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.exp, svg.FormatOpacity("fill", tc.alpha))
		})
	}
}

func TestFormatOpacityRoundTrip(t *testing.T) {
	t.Parallel()

	for i := 0; i <= 1000; i++ {
		alpha := float32(i) / 1000
		out := svg.FormatOpacity("stroke", alpha)
		if float32(math.Abs(float64(alpha)-1)) <= 1e-3 {
			assert.Empty(t, out, alpha)
			continue
		}
		if !assert.True(t, strings.HasPrefix(out, ` stroke-opacity="`), out) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimPrefix(out, ` stroke-opacity="`), `"`), 32)
		assert.NoError(t, err)
		assert.InDelta(t, alpha, v, 5e-4)
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", svg.Float(1))
	assert.Equal(t, "0.5", svg.Float(0.5))
	assert.Equal(t, "-2.25", svg.Float(-2.25))
	assert.Equal(t, "0.000001", svg.Float(1e-6))
	assert.Equal(t, "100000000000000000000", svg.Float(1e20))
	assert.Equal(t, "NaN", svg.Float(math.NaN()))
	assert.Equal(t, "inf", svg.Float(math.Inf(1)))
	assert.Equal(t, "-inf", svg.Float(math.Inf(-1)))

	assert.Equal(t, "0.1", svg.Float32(0.1))
	assert.Equal(t, "4", svg.Float32(4))
}

func TestEscapeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a &lt;b&gt; &amp; &#34;c&#34;", svg.EscapeText(`a <b> & "c"`))
	assert.Equal(t, "M0 0 L10 10 Z", svg.EscapeText("M0 0 L10 10 Z"))
	assert.Equal(t, "a&#xA;b", svg.EscapeText("a\nb"))
	assert.Equal(t, "caf\u00e9", svg.EscapeText("caf\u00e9"))
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1,0,-0,0.5,10,-2.5", svg.Matrix([6]float64{1, 0, math.Copysign(0, -1), 0.5, 10, -2.5}))
}
