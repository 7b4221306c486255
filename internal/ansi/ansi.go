// Package ansi provides the geometry of the xterm 256-colour palette.
// Indices 0-15 are the terminal's own base colours and are never generated.
package ansi

// Palette layout.
const (
	CubeBase  = 16  // first index of the 6x6x6 colour cube
	CubeSteps = 6   // levels per channel in the cube
	GrayBase  = 232 // first index of the grey ramp
	GraySteps = 24  // entries in the grey ramp
)

// CubeID returns the palette index of cube coordinate (r, g, b), each 0-5.
func CubeID(r, g, b int) int {
	return CubeBase + r*CubeSteps*CubeSteps + g*CubeSteps + b
}

// CubeLevel returns the normalised channel value of cube step n (0-5).
func CubeLevel(n int) float64 {
	return float64(n) / float64(CubeSteps-1)
}

// GrayID returns the palette index of grey ramp entry i (0-23).
func GrayID(i int) int {
	return GrayBase + i
}

// GrayLevel returns the normalised channel value of grey ramp entry i.
// The ramp runs from 8 to 238 in steps of 10.
func GrayLevel(i int) float64 {
	return float64(8+10*i) / 255
}
