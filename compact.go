package midicolors

import (
	"io"

	"pkt.systems/jpact"
)

// compactTo streams one compacted JSON document from r to w followed by a
// newline.
func compactTo(w io.Writer, r io.Reader) error {
	if err := jpact.CompactWriter(w, r, 0); err != nil {
		return err
	}
	return writeNewline(w)
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
