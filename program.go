package midicolors

import "fmt"

// NumPrograms is the number of addressable program slots: 128 melodic
// instruments followed by 128 percussion keys.
const NumPrograms = 256

// Program is a MIDI program slot. 0-127 are General MIDI instruments,
// 128-255 are percussion keys 0-127 offset by 128.
type Program uint8

// Category separates melodic instruments from percussion.
type Category uint8

const (
	Instrument Category = iota
	Percussion
)

func (c Category) String() string {
	switch c {
	case Instrument:
		return "instruments"
	case Percussion:
		return "percussion"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// IsPercussion reports whether p addresses a percussion key.
func (p Program) IsPercussion() bool {
	return p >= 128
}

// Category returns the category p belongs to.
func (p Program) Category() Category {
	if p.IsPercussion() {
		return Percussion
	}
	return Instrument
}

// Index returns the program number within its category (0-127). For
// percussion this is the MIDI key.
func (p Program) Index() uint8 {
	return uint8(p) & 0x7f
}

// Name returns the General MIDI name of the instrument or percussion key, or
// "" when the slot has none.
func (p Program) Name() string {
	if p.IsPercussion() {
		return percussionNames[p.Index()]
	}
	return instrumentNames[p.Index()]
}

// Symbol returns the glyph assigned to p.
func (p Program) Symbol() byte {
	return SymbolOf(p)
}
