package midicolors

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"pkt.systems/midicolors/internal/ansi"
)

// PaletteSize is the number of generated palette entries: the 6x6x6 cube
// plus the 24-step grey ramp.
const PaletteSize = ansi.CubeSteps*ansi.CubeSteps*ansi.CubeSteps + ansi.GraySteps

// Monochrome entries have no hue. They get their value as hue and this
// saturation so they sort as their own group, ordered by brightness.
const monochromeSaturation = 0.51

// Color is one addressable terminal colour with the derived values used for
// sorting. All channels are normalised to [0,1].
type Color struct {
	ID        int
	R, G, B   float64
	H, S, V   float64
	Intensity float64
}

// NewColor derives hue, saturation, value and intensity for palette index id
// with channels r, g, b.
func NewColor(id int, r, g, b float64) Color {
	_, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
	h := hue(r, g, b)
	if s == 0 {
		h = v
		s = monochromeSaturation
	}
	return Color{
		ID:        id,
		R:         r,
		G:         g,
		B:         b,
		H:         h,
		S:         s,
		V:         v,
		Intensity: Intensity(r, g, b),
	}
}

// hue returns the hue of r, g, b as a fraction of a turn. It divides by the
// channel range before splitting the wheel into sixths, so colours such as
// index 48 fall just below a hue bucket edge rather than on it. Bucketing
// depends on that rounding.
func hue(r, g, b float64) float64 {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	if maxc == minc {
		return 0
	}
	d := maxc - minc
	rc, gc, bc := (maxc-r)/d, (maxc-g)/d, (maxc-b)/d
	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h
}

// Intensity returns the luma-weighted brightness of an RGB triple.
func Intensity(r, g, b float64) float64 {
	return 0.2125*r + 0.7154*g + 0.0721*b
}

// Monochrome reports whether c is a grey whose hue and saturation were
// substituted.
func (c Color) Monochrome() bool {
	return c.R == c.G && c.G == c.B
}

// BuildPalette enumerates palette indices 16-255 in index order.
func BuildPalette() []Color {
	colors := make([]Color, 0, PaletteSize)
	for r := 0; r < ansi.CubeSteps; r++ {
		for g := 0; g < ansi.CubeSteps; g++ {
			for b := 0; b < ansi.CubeSteps; b++ {
				colors = append(colors, NewColor(ansi.CubeID(r, g, b),
					ansi.CubeLevel(r), ansi.CubeLevel(g), ansi.CubeLevel(b)))
			}
		}
	}
	for i := 0; i < ansi.GraySteps; i++ {
		l := ansi.GrayLevel(i)
		colors = append(colors, NewColor(ansi.GrayID(i), l, l, l))
	}
	return colors
}

// Catalog returns a copy of colors grouped by (value, saturation) and
// ordered by hue within each group.
func Catalog(colors []Color) []Color {
	out := append([]Color(nil), colors...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.V != b.V {
			return a.V < b.V
		}
		if a.S != b.S {
			return a.S < b.S
		}
		return a.H < b.H
	})
	return out
}
