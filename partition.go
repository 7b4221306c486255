package midicolors

import "sort"

// HueBuckets is the number of equal-width hue ranges a pool is split into.
const HueBuckets = 20

const (
	minValue                = 0.2
	minInstrumentSaturation = 0.7
)

// Pool is the ordered set of colours one category draws from.
type Pool struct {
	Category Category
	// Colors is the draw order.
	Colors []Color
	// Buckets holds the hue buckets after their intensity reorder, before
	// they were interleaved into Colors.
	Buckets [][]Color
}

// Len returns the number of colours in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Colors)
}

// Classify returns the pool a colour belongs to. Saturated colours that are
// not too dark go to instruments, the remaining non-dark colours to
// percussion. ok is false for colours too dark for either.
func Classify(c Color) (cat Category, ok bool) {
	switch {
	case c.V > minValue && c.S > minInstrumentSaturation:
		return Instrument, true
	case c.V > minValue:
		return Percussion, true
	}
	return 0, false
}

// Partition splits a palette into the instrument and percussion pools. The
// split walks the palette in Catalog order so colours of equal hue keep that
// order through the later stable sorts.
func Partition(palette []Color) (instruments, percussion *Pool) {
	var split [2][]Color
	for _, c := range Catalog(palette) {
		if cat, ok := Classify(c); ok {
			split[cat] = append(split[cat], c)
		}
	}
	return newPool(Instrument, split[Instrument]), newPool(Percussion, split[Percussion])
}

func newPool(cat Category, colors []Color) *Pool {
	sort.SliceStable(colors, func(i, j int) bool { return colors[i].H < colors[j].H })
	buckets := BucketByHue(colors)
	return &Pool{Category: cat, Colors: Interleave(buckets), Buckets: buckets}
}

// BucketByHue distributes colors over HueBuckets ranges of hue. Each bucket
// is sorted by intensity, and every odd bucket is rotated by half its length
// so neighbouring buckets alternate between dark-first and bright-first runs.
func BucketByHue(colors []Color) [][]Color {
	buckets := make([][]Color, HueBuckets)
	for _, c := range colors {
		i := int(c.H * HueBuckets)
		if i < 0 {
			i = 0
		} else if i > HueBuckets-1 {
			i = HueBuckets - 1
		}
		buckets[i] = append(buckets[i], c)
	}
	for i, b := range buckets {
		sort.SliceStable(b, func(x, y int) bool { return b[x].Intensity < b[y].Intensity })
		if i%2 == 1 {
			buckets[i] = rotateHalf(b)
		}
	}
	return buckets
}

// rotateHalf moves the second half of b in front of the first.
func rotateHalf(b []Color) []Color {
	half := len(b) / 2
	out := make([]Color, 0, len(b))
	out = append(out, b[half:]...)
	return append(out, b[:half]...)
}

// Interleave merges buckets into one sequence with a credit scheduler. Each
// bucket earns len/longest credit per sweep, starting from one half, and
// emits its next colour whenever it holds a full credit. Large buckets thus
// appear more often and evenly spaced while small ones still contribute at
// their rate. The buckets are not modified.
func Interleave(buckets [][]Color) []Color {
	total, longest := 0, 0
	for _, b := range buckets {
		total += len(b)
		if len(b) > longest {
			longest = len(b)
		}
	}
	if total == 0 {
		return nil
	}

	rate := make([]float64, len(buckets))
	credit := make([]float64, len(buckets))
	next := make([]int, len(buckets))
	for i, b := range buckets {
		rate[i] = float64(len(b)) / float64(longest)
		credit[i] = 0.5
	}

	out := make([]Color, 0, total)
	for len(out) < total {
		for i, b := range buckets {
			credit[i] += rate[i]
			if next[i] < len(b) && credit[i] >= 1 {
				out = append(out, b[next[i]])
				next[i]++
				credit[i]--
			}
		}
	}
	return out
}
