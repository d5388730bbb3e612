package d2style_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/d2paint/d2style"
	"oss.terrastruct.com/d2paint/lib/color"
	"oss.terrastruct.com/d2paint/lib/geo"
)

func TestFillRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		fill    d2style.Fill
		exp     string
		expDefs string
	}{
		{
			name: "none",
			fill: d2style.NoFill(),
			exp:  ` fill="none"`,
		},
		{
			name: "zero_value",
			fill: d2style.Fill{},
			exp:  ` fill="none"`,
		},
		{
			name: "solid",
			fill: d2style.Solid(color.FromRGB8(0x33, 0x66, 0x99)),
			exp:  ` fill="#336699"`,
		},
		{
			name: "solid_half",
			fill: d2style.Solid(color.FromRGBA8(0x33, 0x66, 0x99, 128)),
			exp:  ` fill="#336699" fill-opacity="0.502"`,
		},
		{
			name:    "gradient",
			fill:    d2style.FromGradient(d2style.NewGradient(geo.NewPoint(0, 0), color.Red, geo.NewPoint(1, 1), color.Blue, geo.Identity(), 42, d2style.GradientLinear)),
			exp:     ` fill="url('#42')"`,
			expDefs: `<linearGradient id="42" x1="16" x2="80" y1="8" y2="40" gradientTransform="matrix(0.015625,-0,0,0.03125,-0.25,-0.25)"><stop offset="0" stop-color="#ff0000" /><stop offset="1" stop-color="#0000ff" /></linearGradient>`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			defs := &strings.Builder{}
			diff.AssertStringEq(t, tc.exp, tc.fill.Render(defs, geo.Identity(), bounds, bounds))
			diff.AssertStringEq(t, tc.expDefs, defs.String())
		})
	}
}

func TestFillSolidOpaque(t *testing.T) {
	t.Parallel()

	for _, c := range []color.Color{color.Black, color.White, color.Red, color.FromRGB8(1, 2, 3)} {
		out := d2style.Solid(c).Render(&strings.Builder{}, geo.Identity(), bounds, bounds)
		assert.NotContains(t, out, "-opacity")
		assert.Contains(t, out, `fill="#`+c.RGBHex()+`"`)
	}
}

func TestFillColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, color.Black, d2style.NoFill().Color())
	assert.Equal(t, color.Red, d2style.Solid(color.Red).Color())

	g := d2style.NewGradient(geo.NewPoint(0, 0), color.Blue, geo.NewPoint(1, 1), color.Red, geo.Identity(), 1, d2style.GradientRadial)
	assert.Equal(t, color.Blue, d2style.FromGradient(g).Color())

	g.Stops[0].Color = nil
	assert.Equal(t, color.Black, d2style.FromGradient(g).Color())
	assert.Equal(t, color.Black, d2style.FromGradient(d2style.Gradient{}).Color())
}

func TestFillAccessors(t *testing.T) {
	t.Parallel()

	assert.False(t, d2style.NoFill().IsSome())
	assert.True(t, d2style.Solid(color.Red).IsSome())
	assert.Equal(t, d2style.FillNone, d2style.Fill{}.Type())

	c, ok := d2style.Solid(color.Red).SolidColor()
	assert.True(t, ok)
	assert.Equal(t, color.Red, c)
	_, ok = d2style.NoFill().SolidColor()
	assert.False(t, ok)

	g := d2style.NewGradient(geo.NewPoint(0, 0), color.Blue, geo.NewPoint(1, 1), color.Red, geo.Identity(), 1, d2style.GradientLinear)
	f := d2style.FromGradient(g)
	assert.True(t, f.IsSome())
	assert.Equal(t, d2style.FillGradient, f.Type())
	got, ok := f.Gradient()
	assert.True(t, ok)
	assert.Equal(t, g, got)
	_, ok = d2style.Solid(color.Red).Gradient()
	assert.False(t, ok)
}
