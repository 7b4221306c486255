package midicolors

import (
	"reflect"
	"sort"
	"testing"
)

func TestPartition_SizesAndDisjoint(t *testing.T) {
	palette := BuildPalette()
	inst, perc := Partition(palette)

	if inst.Category != Instrument || perc.Category != Percussion {
		t.Fatalf("pool categories swapped: %v %v", inst.Category, perc.Category)
	}
	if inst.Len() != 126 || perc.Len() != 101 {
		t.Fatalf("pool sizes = %d/%d, want 126/101", inst.Len(), perc.Len())
	}

	owner := make(map[int]Category)
	for _, p := range []*Pool{inst, perc} {
		for _, c := range p.Colors {
			if prev, dup := owner[c.ID]; dup {
				t.Fatalf("color %d drawn twice (pools %v and %v)", c.ID, prev, p.Category)
			}
			owner[c.ID] = p.Category
		}
	}

	for _, c := range palette {
		cat, inPool := owner[c.ID]
		if c.V <= 0.2 {
			if inPool {
				t.Fatalf("dark color %d (v=%v) landed in %v", c.ID, c.V, cat)
			}
			continue
		}
		if !inPool {
			t.Fatalf("color %d (v=%v) dropped", c.ID, c.V)
		}
		want, _ := Classify(c)
		if cat != want {
			t.Fatalf("color %d in %v, want %v", c.ID, cat, want)
		}
		if cat == Instrument && c.S <= 0.7 {
			t.Fatalf("unsaturated color %d in instrument pool", c.ID)
		}
	}
}

func TestPartition_BucketsAreABijection(t *testing.T) {
	inst, perc := Partition(BuildPalette())
	for _, p := range []*Pool{inst, perc} {
		if len(p.Buckets) != HueBuckets {
			t.Fatalf("%v: %d buckets", p.Category, len(p.Buckets))
		}
		var fromBuckets []int
		for i, b := range p.Buckets {
			for _, c := range b {
				idx := int(c.H * HueBuckets)
				if idx > HueBuckets-1 {
					idx = HueBuckets - 1
				}
				if idx != i {
					t.Fatalf("%v: color %d (h=%v) in bucket %d", p.Category, c.ID, c.H, i)
				}
				fromBuckets = append(fromBuckets, c.ID)
			}
		}
		drawn := colorIDs(p.Colors)
		sort.Ints(fromBuckets)
		sort.Ints(drawn)
		if !reflect.DeepEqual(fromBuckets, drawn) {
			t.Fatalf("%v: interleave is not a permutation of the buckets", p.Category)
		}
	}
}

func TestPartition_InterleaveKeepsBucketOrder(t *testing.T) {
	inst, perc := Partition(BuildPalette())
	for _, p := range []*Pool{inst, perc} {
		bucketOf := make(map[int]int)
		for i, b := range p.Buckets {
			for _, c := range b {
				bucketOf[c.ID] = i
			}
		}
		got := make([][]int, HueBuckets)
		for _, c := range p.Colors {
			got[bucketOf[c.ID]] = append(got[bucketOf[c.ID]], c.ID)
		}
		for i, b := range p.Buckets {
			if len(b) == 0 {
				continue
			}
			if !reflect.DeepEqual(got[i], colorIDs(b)) {
				t.Fatalf("%v bucket %d drawn as %v, want %v", p.Category, i, got[i], colorIDs(b))
			}
		}
	}
}

func TestBucketByHue_SortsAndRotates(t *testing.T) {
	colors := []Color{
		testColor(1, 0.01, 0.9),
		testColor(2, 0.02, 0.1),
		testColor(3, 0.03, 0.5),
		// bucket 1: intensities 0.1..0.5, rotated by half
		testColor(11, 0.06, 0.5),
		testColor(12, 0.06, 0.4),
		testColor(13, 0.07, 0.3),
		testColor(14, 0.08, 0.2),
		testColor(15, 0.09, 0.1),
		// hue 1 clamps into the last bucket
		testColor(99, 1.0, 0.5),
	}
	buckets := BucketByHue(colors)
	if got := colorIDs(buckets[0]); !reflect.DeepEqual(got, []int{2, 3, 1}) {
		t.Fatalf("bucket 0 = %v", got)
	}
	if got := colorIDs(buckets[1]); !reflect.DeepEqual(got, []int{13, 12, 11, 15, 14}) {
		t.Fatalf("bucket 1 = %v", got)
	}
	if got := colorIDs(buckets[HueBuckets-1]); !reflect.DeepEqual(got, []int{99}) {
		t.Fatalf("last bucket = %v", got)
	}
	for i := 2; i < HueBuckets-1; i++ {
		if len(buckets[i]) != 0 {
			t.Fatalf("bucket %d should be empty", i)
		}
	}
}

func TestRotateHalf(t *testing.T) {
	cases := []struct {
		in   []int
		want []int
	}{
		{nil, []int{}},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3, 4, 5}, []int{3, 4, 5, 1, 2}},
	}
	for _, tc := range cases {
		in := make([]Color, len(tc.in))
		for i, id := range tc.in {
			in[i] = Color{ID: id}
		}
		if got := colorIDs(rotateHalf(in)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("rotateHalf(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestInterleave(t *testing.T) {
	mk := func(ids ...int) []Color {
		out := make([]Color, len(ids))
		for i, id := range ids {
			out[i] = Color{ID: id}
		}
		return out
	}
	cases := []struct {
		name    string
		buckets [][]Color
		want    []int
	}{
		{"empty", [][]Color{nil, nil}, nil},
		{"single", [][]Color{mk(1, 2, 3)}, []int{1, 2, 3}},
		{"two to one", [][]Color{mk(1, 2), mk(10)}, []int{1, 10, 2}},
		{"gap", [][]Color{mk(1), nil, mk(20, 21, 22)}, []int{20, 1, 21, 22}},
		{"even", [][]Color{mk(1, 2), mk(10, 11)}, []int{1, 10, 2, 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Interleave(tc.buckets)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("expected no output, got %v", colorIDs(got))
				}
				return
			}
			if ids := colorIDs(got); !reflect.DeepEqual(ids, tc.want) {
				t.Fatalf("Interleave = %v, want %v", ids, tc.want)
			}
		})
	}
}

func TestInterleave_DoesNotModifyBuckets(t *testing.T) {
	buckets := [][]Color{{{ID: 1}, {ID: 2}}, {{ID: 3}}}
	Interleave(buckets)
	if len(buckets[0]) != 2 || len(buckets[1]) != 1 || buckets[0][0].ID != 1 {
		t.Fatalf("buckets modified: %v", buckets)
	}
}

func TestPartition_Empty(t *testing.T) {
	inst, perc := Partition(nil)
	if inst.Len() != 0 || perc.Len() != 0 {
		t.Fatalf("expected empty pools")
	}
	var nilPool *Pool
	if nilPool.Len() != 0 {
		t.Fatalf("nil pool must have zero length")
	}
}
