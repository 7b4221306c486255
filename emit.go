package midicolors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"strconv"
)

// valuesPerLine is the row width of every tabular format.
const valuesPerLine = 16

func emitC(buf *bytes.Buffer, res *Result, opts *EmitOptions) error {
	ids := res.Table.ColorIDs()
	fmt.Fprintf(buf, "/* AUTO-GENERATED by %s */\n", opts.Generator)
	fmt.Fprintf(buf, "static const unsigned char MIDIcolors256[%d] = {\n", NumPrograms)
	for i, id := range ids {
		fmt.Fprintf(buf, "%3d", id)
		if i != NumPrograms-1 {
			buf.WriteByte(',')
		}
		if i%valuesPerLine == valuesPerLine-1 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("};\n")
	return nil
}

func emitGo(buf *bytes.Buffer, res *Result, opts *EmitOptions) error {
	var src bytes.Buffer
	fmt.Fprintf(&src, "// Code generated by %s. DO NOT EDIT.\n\n", opts.Generator)
	fmt.Fprintf(&src, "package %s\n\n", opts.Package)
	src.WriteString("// MIDIColors256 holds the xterm-256 color of every MIDI program.\n")
	src.WriteString("// Percussion key k is at index 128+k.\n")
	fmt.Fprintf(&src, "var MIDIColors256 = [%d]uint8{\n", NumPrograms)
	ids := res.Table.ColorIDs()
	for i, id := range ids {
		if i%valuesPerLine == 0 {
			src.WriteByte('\t')
		} else {
			src.WriteByte(' ')
		}
		src.WriteString(strconv.Itoa(int(id)))
		src.WriteByte(',')
		if i%valuesPerLine == valuesPerLine-1 {
			src.WriteByte('\n')
		}
	}
	src.WriteString("}\n\n")
	src.WriteString("// MIDISymbols256 holds the glyph of every MIDI program, in the same order.\n")
	fmt.Fprintf(&src, "const MIDISymbols256 = %s\n", strconv.Quote(res.Table.Symbols()))

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("format go source: %w", err)
	}
	buf.Write(formatted)
	return nil
}

type jsonTable struct {
	Colors  []int  `json:"colors"`
	Symbols string `json:"symbols"`
}

func newJSONTable(res *Result) jsonTable {
	ids := res.Table.ColorIDs()
	colors := make([]int, len(ids))
	for i, id := range ids {
		colors[i] = int(id)
	}
	return jsonTable{Colors: colors, Symbols: res.Table.Symbols()}
}

func emitJSON(buf *bytes.Buffer, res *Result, _ *EmitOptions) error {
	data, err := json.MarshalIndent(newJSONTable(res), "", "  ")
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte('\n')
	return nil
}

// emitJSONCompact is the json artifact run through the compactor, so the two
// formats always carry the same document.
func emitJSONCompact(buf *bytes.Buffer, res *Result, opts *EmitOptions) error {
	var indented bytes.Buffer
	if err := emitJSON(&indented, res, opts); err != nil {
		return err
	}
	return compactTo(buf, &indented)
}
