// Package colors provides a small color type with conversions between RGB,
// HSV, CIE Lab, CMYK and hex representations, perceptual color distance,
// and palette helpers. Conversions delegate to go-colorful except for CMYK,
// which uses the naive subtractive formulas.
package colors

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/goulu/goulib/seq"
)

// Color is an immutable color value. The zero value is black.
type Color struct {
	c colorful.Color
}

// FromRGB creates a Color from red, green and blue components. Components
// in [0..1] are used as-is; if any component exceeds 1 the triple is
// interpreted as 0..255 and scaled down. The result is clamped to the RGB
// gamut, so a color never gets whiter than white.
func FromRGB(r, g, b float64) Color {
	if r > 1 || g > 1 || b > 1 {
		r, g, b = r/255, g/255, b/255
	}
	return Color{colorful.Color{R: r, G: g, B: b}.Clamped()}
}

// FromHex parses a "#rrggbb" hex string.
func FromHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{c}, nil
}

// FromHSV creates a Color from hue in degrees [0..360] and saturation and
// value in [0..1].
func FromHSV(h, s, v float64) Color {
	return Color{colorful.Hsv(h, s, v).Clamped()}
}

// FromLab creates a Color from CIE L*a*b* coordinates (L in [0..1], D65).
func FromLab(l, a, b float64) Color {
	return Color{colorful.Lab(l, a, b).Clamped()}
}

// FromCMYK creates a Color from cyan, magenta, yellow and black components
// in [0..1].
func FromCMYK(c, m, y, k float64) Color {
	r, g, b := CMYKToRGB(c, m, y, k)
	return FromRGB(r, g, b)
}

// RGB returns the red, green and blue components in [0..1].
func (c Color) RGB() (r, g, b float64) {
	return c.c.R, c.c.G, c.c.B
}

// RGB255 returns the components as 0..255 integers.
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.RGB255()
}

// Hex returns the "#rrggbb" representation. It also serves as the color's
// display name.
func (c Color) Hex() string {
	return c.c.Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// HSV returns hue in degrees [0..360] and saturation and value in [0..1].
func (c Color) HSV() (h, s, v float64) {
	return c.c.Hsv()
}

// Lab returns the CIE L*a*b* coordinates under the D65 white point.
func (c Color) Lab() (l, a, b float64) {
	return c.c.Lab()
}

// CMYK returns the cyan, magenta, yellow and black components in [0..1].
func (c Color) CMYK() (cy, m, y, k float64) {
	return RGBToCMYK(c.c.R, c.c.G, c.c.B)
}

// Equal reports whether two colors have the same 8-bit RGB representation.
func (c Color) Equal(other Color) bool {
	return c.Hex() == other.Hex()
}

// Add returns the channel-wise sum of two colors, clamped to the gamut.
func (c Color) Add(other Color) Color {
	return FromRGB(c.c.R+other.c.R, c.c.G+other.c.G, c.c.B+other.c.B)
}

// Sub returns the channel-wise difference of two colors, clamped.
func (c Color) Sub(other Color) Color {
	return FromRGB(c.c.R-other.c.R, c.c.G-other.c.G, c.c.B-other.c.B)
}

// Complement returns the complementary color, white minus c.
func (c Color) Complement() Color {
	return FromRGB(1-c.c.R, 1-c.c.G, 1-c.c.B)
}

// DeltaE returns the CIEDE2000 color difference between two colors.
// Values below roughly 1 are imperceptible to the human eye.
func DeltaE(a, b Color) float64 {
	return a.c.DistanceCIEDE2000(b.c)
}

// RGBToCMYK converts red, green and blue in [0..1] to cyan, magenta,
// yellow and black in [0..1]. Pure black maps to (0,0,0,1).
func RGBToCMYK(r, g, b float64) (c, m, y, k float64) {
	c, m, y = 1-r, 1-g, 1-b
	k = min(c, min(m, y))
	if k == 1 {
		return 0, 0, 0, 1
	}
	c = (c - k) / (1 - k)
	m = (m - k) / (1 - k)
	y = (y - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB converts cyan, magenta, yellow and black in [0..1] to red,
// green and blue. The result may fall outside [0..1] for some inputs;
// FromCMYK clamps it.
func CMYKToRGB(c, m, y, k float64) (r, g, b float64) {
	return 1 - (c + k), 1 - (m + k), 1 - (y + k)
}

// Nearest returns the color of the palette that is perceptually closest to
// c by CIEDE2000 distance. It reports false for an empty palette.
func Nearest(c Color, palette []Color) (Color, bool) {
	return pick(c, palette, func(d, best float64) bool { return d < best })
}

// Farthest returns the perceptually most different palette color, the
// opt=max counterpart of Nearest.
func Farthest(c Color, palette []Color) (Color, bool) {
	return pick(c, palette, func(d, best float64) bool { return d > best })
}

func pick(c Color, palette []Color, better func(d, best float64) bool) (Color, bool) {
	if len(palette) == 0 {
		return Color{}, false
	}
	best := palette[0]
	bestD := DeltaE(c, palette[0])
	for _, p := range palette[1:] {
		if d := DeltaE(c, p); better(d, bestD) {
			best, bestD = p, d
		}
	}
	return best, true
}

// Range returns n colors interpolated between start and end, both included,
// in HSV space.
func Range(n int, start, end Color) []Color {
	h1, s1, v1 := start.HSV()
	h2, s2, v2 := end.HSV()
	out := make([]Color, 0, n)
	for t := range seq.Linspace(0, 1, n) {
		out = append(out, FromHSV(h1+t*(h2-h1), s1+t*(s2-s1), v1+t*(v2-v1)))
	}
	return out
}
