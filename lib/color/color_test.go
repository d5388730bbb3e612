package color_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/d2paint/lib/color"
)

func TestHex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		c    color.Color
		rgb  string
		rgba string
	}{
		{
			name: "black",
			c:    color.Black,
			rgb:  "000000",
			rgba: "000000ff",
		},
		{
			name: "translucent",
			c:    color.FromRGBA8(0x12, 0xab, 0xef, 0x80),
			rgb:  "12abef",
			rgba: "12abef80",
		},
		{
			name: "white",
			c:    color.White,
			rgb:  "ffffff",
			rgba: "ffffffff",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.rgb, tc.c.RGBHex())
			assert.Equal(t, tc.rgba, tc.c.RGBAHex())
		})
	}
}

func TestFromRGBAStr(t *testing.T) {
	t.Parallel()

	c, ok := color.FromRGBAStr("ff000080")
	assert.True(t, ok)
	assert.Equal(t, color.FromRGBA8(255, 0, 0, 128), c)
	assert.Equal(t, float32(128)/255, c.A())

	for _, bad := range []string{"", "ff0000", "ff0000zz", "ff00008000", "#ff0000"} {
		_, ok := color.FromRGBAStr(bad)
		assert.False(t, ok, bad)
	}
}

func TestFromRGBStr(t *testing.T) {
	t.Parallel()

	c, ok := color.FromRGBStr("00FF7f")
	assert.True(t, ok)
	assert.Equal(t, color.FromRGB8(0, 255, 127), c)
	assert.Equal(t, float32(1), c.A())

	for i := 0; i < 256; i++ {
		v := uint8(i)
		c, ok := color.FromRGBStr(fmt.Sprintf("%02x%02x%02x", v, 255-v, v/2))
		assert.True(t, ok)
		assert.Equal(t, color.FromRGB8(v, 255-v, v/2), c)
	}

	for _, bad := range []string{"", "fff", "00ff7", "gg0000", "+10000", "ff000080"} {
		_, ok := color.FromRGBStr(bad)
		assert.False(t, ok, bad)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	c, err := color.Parse("red")
	assert.NoError(t, err)
	assert.Equal(t, "ff0000", c.RGBHex())

	c, err = color.Parse("#00ff00")
	assert.NoError(t, err)
	assert.Equal(t, "00ff00ff", c.RGBAHex())

	c, err = color.Parse("0000ff")
	assert.NoError(t, err)
	assert.Equal(t, color.Blue, c)

	_, err = color.Parse("not a color")
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	in := color.FromRGBA8(1, 2, 3, 4)
	b, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Equal(t, `"01020304"`, string(b))

	var out color.Color
	assert.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &out))
	assert.Error(t, json.Unmarshal([]byte(`12`), &out))
}
