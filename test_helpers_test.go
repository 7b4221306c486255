package midicolors

import (
	"bytes"
	"errors"
	"testing"
)

type plainWriter struct {
	buf bytes.Buffer
}

func (w *plainWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *plainWriter) String() string {
	return w.buf.String()
}

type byteWriter struct {
	buf   bytes.Buffer
	bytes int
}

func (w *byteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *byteWriter) WriteByte(b byte) error {
	w.bytes++
	return w.buf.WriteByte(b)
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type newlineFailWriter struct {
	buf bytes.Buffer
}

func (w *newlineFailWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *newlineFailWriter) WriteByte(_ byte) error {
	return errors.New("newline err")
}

func mustGenerate(t testing.TB, opts *Options) *Result {
	t.Helper()
	res, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func colorIDs(colors []Color) []int {
	ids := make([]int, len(colors))
	for i, c := range colors {
		ids[i] = c.ID
	}
	return ids
}

func testColor(id int, h, intensity float64) Color {
	return Color{ID: id, H: h, S: 1, V: 1, Intensity: intensity}
}
