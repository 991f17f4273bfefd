// Package colors implements the block runtime's color model: conversions
// between packed-decimal, hex, RGB and HSV encodings, plus channel mixing.
// Every function is pure and total; malformed input maps to a defined
// fallback rather than an error.
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB is a color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// RGBA adds an 8-bit alpha channel to RGB. Packed-decimal decoding is the
// only operation that produces meaningful alpha; everything else treats
// colors as opaque.
type RGBA struct {
	RGB
	A uint8
}

// HSV is a color in hue/saturation/value space. H is degrees in [0,360),
// S and V are in [0,1].
type HSV struct {
	H, S, V float64
}

// FRGB is an RGB color with unclamped floating-point channels. MixRGB
// returns FRGB because interpolation keeps fractional channel values;
// callers round and clamp when they need 8-bit channels.
type FRGB struct {
	R, G, B float64
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// DecimalToHex formats a packed decimal color as a lowercase #rrggbb
// string. Negative decimals wrap into the unsigned 24-bit range.
func DecimalToHex(decimal int) string {
	if decimal < 0 {
		decimal += 0xFFFFFF + 1
	}
	return fmt.Sprintf("#%06x", decimal)
}

// DecimalToRGB unpacks a 32-bit decimal color: bits 24-31 are alpha, then
// red, green, blue. A zero alpha field means no alpha was encoded and
// decodes as fully opaque.
func DecimalToRGB(decimal int) RGBA {
	u := uint32(decimal)
	a := uint8(u >> 24)
	if a == 0 {
		a = 255
	}
	return RGBA{RGB{uint8(u >> 16), uint8(u >> 8), uint8(u)}, a}
}

var (
	hexShorthand = regexp.MustCompile(`(?i)^#?([0-9a-f])([0-9a-f])([0-9a-f])$`)
	hexFull      = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)
)

// HexToRGB parses #rgb or #rrggbb, the leading # optional and hex digits
// case-insensitive. Shorthand digits are doubled (#90f reads as #9900ff).
// ok is false when the string matches neither form.
func HexToRGB(hex string) (RGB, bool) {
	if m := hexShorthand.FindStringSubmatch(hex); m != nil {
		hex = "#" + m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	m := hexFull.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{uint8(r), uint8(g), uint8(b)}, true
}

// RGBToDecimal packs the three channels into a 24-bit decimal. Alpha never
// participates in the packed form.
func RGBToDecimal(rgb RGB) int {
	return int(rgb.R)<<16 | int(rgb.G)<<8 | int(rgb.B)
}

// RGBToHex formats an RGB color as a lowercase #rrggbb string.
func RGBToHex(rgb RGB) string {
	return DecimalToHex(RGBToDecimal(rgb))
}

// HexToDecimal parses a hex color string into its packed decimal form.
func HexToDecimal(hex string) (int, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return 0, false
	}
	return RGBToDecimal(rgb), true
}

// HSVToRGB converts to RGB space. Hue is normalized into [0,360) first,
// saturation and value are clamped into [0,1], and the resulting channels
// are floored, not rounded.
func HSVToRGB(hsv HSV) RGB {
	h := math.Mod(hsv.H, 360)
	if h < 0 {
		h += 360
	}
	s := math.Max(0, math.Min(hsv.S, 1))
	v := math.Max(0, math.Min(hsv.V, 1))

	i := int(math.Floor(h/60)) % 6
	f := h/60 - math.Floor(h/60)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return RGB{
		uint8(math.Floor(r * 255)),
		uint8(math.Floor(g * 255)),
		uint8(math.Floor(b * 255)),
	}
}

// RGBToHSV converts to HSV space. Grays report hue 0 and saturation 0
// rather than an indeterminate hue.
func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)

	var h, s float64
	if min != max {
		var f, i float64
		switch min {
		case r:
			f, i = g-b, 3
		case g:
			f, i = b-r, 5
		default:
			f, i = r-g, 1
		}
		h = math.Mod((i-f/(max-min))*60, 360)
		s = (max - min) / max
	}

	return HSV{h, s, max}
}

// MixRGB linearly interpolates between rgb0 and rgb1, with fraction1 the
// weight of rgb1. Fractions at or past the ends return that endpoint.
// Channels stay floating point and unrounded.
func MixRGB(rgb0, rgb1 RGB, fraction1 float64) FRGB {
	if fraction1 <= 0 {
		return FRGB{float64(rgb0.R), float64(rgb0.G), float64(rgb0.B)}
	}
	if fraction1 >= 1 {
		return FRGB{float64(rgb1.R), float64(rgb1.G), float64(rgb1.B)}
	}
	fraction0 := 1 - fraction1
	return FRGB{
		fraction0*float64(rgb0.R) + fraction1*float64(rgb1.R),
		fraction0*float64(rgb0.G) + fraction1*float64(rgb1.G),
		fraction0*float64(rgb0.B) + fraction1*float64(rgb1.B),
	}
}
