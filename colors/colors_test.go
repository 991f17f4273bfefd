package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToHex(t *testing.T) {
	assert.Equal(t, "#ffffff", DecimalToHex(0xFFFFFF))
	assert.Equal(t, "#000000", DecimalToHex(0))
	assert.Equal(t, "#0000ff", DecimalToHex(255))
	assert.Equal(t, "#9966ff", DecimalToHex(0x9966FF))

	// Negative decimals wrap into the unsigned 24-bit range.
	assert.Equal(t, "#ffffff", DecimalToHex(-1))
	assert.Equal(t, "#fffffe", DecimalToHex(-2))
}

func TestDecimalToRGB(t *testing.T) {
	c := DecimalToRGB(0xFF8040)
	assert.Equal(t, uint8(0xFF), c.R)
	assert.Equal(t, uint8(0x80), c.G)
	assert.Equal(t, uint8(0x40), c.B)
	// No alpha bits reads as opaque, not transparent.
	assert.Equal(t, uint8(255), c.A)

	withAlpha := DecimalToRGB(0x80FF8040)
	assert.Equal(t, uint8(0x80), withAlpha.A)
	assert.Equal(t, uint8(0xFF), withAlpha.R)
}

func TestHexToRGB(t *testing.T) {
	c, ok := HexToRGB("#9966ff")
	require.True(t, ok)
	assert.Equal(t, RGB{0x99, 0x66, 0xFF}, c)

	// Leading # is optional, digits are case-insensitive.
	c, ok = HexToRGB("9966FF")
	require.True(t, ok)
	assert.Equal(t, RGB{0x99, 0x66, 0xFF}, c)

	// Shorthand digits double up.
	c, ok = HexToRGB("#90f")
	require.True(t, ok)
	assert.Equal(t, RGB{0x99, 0x00, 0xFF}, c)

	for _, bad := range []string{"", "#", "#12", "#12345", "#1234567", "red", "#gghhii"} {
		_, ok := HexToRGB(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestRGBDecimalRoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {1, 2, 3}, {0x99, 0x66, 0xFF}} {
		got := DecimalToRGB(RGBToDecimal(c))
		assert.Equal(t, c, got.RGB)
	}
}

func TestRGBHexRoundTrip(t *testing.T) {
	for _, c := range []RGB{{0, 0, 0}, {255, 255, 255}, {17, 34, 51}, {0x99, 0x66, 0xFF}} {
		got, ok := HexToRGB(RGBToHex(c))
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestHexToDecimal(t *testing.T) {
	d, ok := HexToDecimal("#9966ff")
	require.True(t, ok)
	assert.Equal(t, 0x9966FF, d)

	_, ok = HexToDecimal("nope")
	assert.False(t, ok)
}

func TestHSVToRGB(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, HSVToRGB(HSV{0, 0, 1}))
	assert.Equal(t, RGB{255, 0, 0}, HSVToRGB(HSV{0, 1, 1}))
	assert.Equal(t, RGB{0, 255, 0}, HSVToRGB(HSV{120, 1, 1}))
	assert.Equal(t, RGB{0, 0, 255}, HSVToRGB(HSV{240, 1, 1}))
	assert.Equal(t, RGB{0, 0, 0}, HSVToRGB(HSV{0, 0, 0}))
}

func TestHSVToRGBNormalizesHue(t *testing.T) {
	// -120 and 600 both land on 240 degrees.
	assert.Equal(t, HSVToRGB(HSV{240, 1, 1}), HSVToRGB(HSV{-120, 1, 1}))
	assert.Equal(t, HSVToRGB(HSV{240, 1, 1}), HSVToRGB(HSV{600, 1, 1}))
}

func TestHSVToRGBClampsSV(t *testing.T) {
	assert.Equal(t, HSVToRGB(HSV{0, 1, 1}), HSVToRGB(HSV{0, 2, 5}))
	assert.Equal(t, HSVToRGB(HSV{0, 0, 0}), HSVToRGB(HSV{0, -1, -1}))
}

func TestRGBToHSV(t *testing.T) {
	hsv := RGBToHSV(RGB{255, 0, 0})
	assert.InDelta(t, 0, hsv.H, 1e-9)
	assert.InDelta(t, 1, hsv.S, 1e-9)
	assert.InDelta(t, 1, hsv.V, 1e-9)

	hsv = RGBToHSV(RGB{0, 0, 255})
	assert.InDelta(t, 240, hsv.H, 1e-9)
	assert.InDelta(t, 1, hsv.S, 1e-9)
}

func TestRGBToHSVGray(t *testing.T) {
	// Grays have no hue or saturation, by policy rather than NaN.
	hsv := RGBToHSV(RGB{128, 128, 128})
	assert.Equal(t, 0.0, hsv.H)
	assert.Equal(t, 0.0, hsv.S)
	assert.InDelta(t, 128.0/255, hsv.V, 1e-9)
}

func TestMixRGB(t *testing.T) {
	mid := MixRGB(Black, White, 0.5)
	assert.Equal(t, FRGB{127.5, 127.5, 127.5}, mid)

	// Out-of-range fractions clamp to the endpoints.
	assert.Equal(t, FRGB{0, 0, 0}, MixRGB(Black, White, -1))
	assert.Equal(t, FRGB{255, 255, 255}, MixRGB(Black, White, 2))
	assert.Equal(t, FRGB{0, 0, 0}, MixRGB(Black, White, 0))
	assert.Equal(t, FRGB{255, 255, 255}, MixRGB(Black, White, 1))

	quarter := MixRGB(RGB{0, 100, 200}, RGB{100, 200, 0}, 0.25)
	assert.InDelta(t, 25, quarter.R, 1e-9)
	assert.InDelta(t, 125, quarter.G, 1e-9)
	assert.InDelta(t, 150, quarter.B, 1e-9)
}
