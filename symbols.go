package midicolors

import "sort"

// Symbols holds one glyph per program slot, sixteen per row.
const Symbols = "" +
	"PPPPPPhcckmvmxbd" + // Ins   0-15
	"oooooahoGGGGGGGG" + // Ins  16-31
	"BBBBBBBBVVVVVHHM" + // Ins  32-47
	"SSSSOOOcTTTTTTTT" + // Ins  48-63
	"XXXXTTTFFFFFFFFF" + // Ins  64-79
	"LLLLLLLLpppppppp" + // Ins  80-95
	"XXXXXXXXGGGGGTSS" + // Ins  96-111
	"bbbbMMMcGXXXXXXX" + // Ins 112-127
	"????????????????" + // Prc   0-15
	"???????????DDDDD" + // Prc  16-31
	"DDDDDshMhhhCCCbM" + // Prc  32-47
	"CBDMMDDDMMDDDDDD" + // Prc  48-63
	"DDDDDDDDDDDDDDDD" + // Prc  64-79
	"DDDDDDDD????????" + // Prc  80-95
	"????????????????" + // Prc  96-111
	"????????????????"   // Prc 112-127

// SymbolKey groups programs that share a glyph within one category.
type SymbolKey struct {
	Category Category
	Symbol   byte
}

// Less orders keys by category, then by glyph.
func (k SymbolKey) Less(o SymbolKey) bool {
	if k.Category != o.Category {
		return k.Category < o.Category
	}
	return k.Symbol < o.Symbol
}

// SymbolTable maps programs to glyphs and counts how many programs share
// each (category, glyph) key.
type SymbolTable struct {
	symbols string
	counts  map[SymbolKey]int
	keys    []SymbolKey
}

var defaultSymbolTable = NewSymbolTable(Symbols)

// DefaultSymbolTable returns the table built from Symbols.
func DefaultSymbolTable() *SymbolTable {
	return defaultSymbolTable
}

// NewSymbolTable builds a table from a NumPrograms-long glyph string. It
// panics when the length is wrong; tables are static data.
func NewSymbolTable(symbols string) *SymbolTable {
	if len(symbols) != NumPrograms {
		panic("midicolors: symbol table must have 256 entries")
	}
	t := &SymbolTable{symbols: symbols, counts: make(map[SymbolKey]int)}
	for i := 0; i < NumPrograms; i++ {
		p := Program(i)
		key := SymbolKey{Category: p.Category(), Symbol: symbols[i]}
		if t.counts[key] == 0 {
			t.keys = append(t.keys, key)
		}
		t.counts[key]++
	}
	sort.Slice(t.keys, func(i, j int) bool { return t.keys[i].Less(t.keys[j]) })
	return t
}

// SymbolOf returns the glyph of p in the default table.
func SymbolOf(p Program) byte {
	return Symbols[p]
}

// Symbol returns the glyph of p.
func (t *SymbolTable) Symbol(p Program) byte {
	return t.symbols[p]
}

// Key returns the (category, glyph) key of p.
func (t *SymbolTable) Key(p Program) SymbolKey {
	return SymbolKey{Category: p.Category(), Symbol: t.symbols[p]}
}

// CountBy returns how many programs in the category use the glyph.
func (t *SymbolTable) CountBy(percussion bool, symbol byte) int {
	c := Instrument
	if percussion {
		c = Percussion
	}
	return t.counts[SymbolKey{Category: c, Symbol: symbol}]
}

// Count returns the number of programs sharing key.
func (t *SymbolTable) Count(key SymbolKey) int {
	return t.counts[key]
}

// Keys returns every key present in the table, instruments first and glyphs
// ascending within a category. The returned slice must not be modified.
func (t *SymbolTable) Keys() []SymbolKey {
	return t.keys
}
