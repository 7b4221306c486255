package midicolors

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned when a category has no colours to draw from.
var ErrEmptyPool = errors.New("empty color pool")

// Options controls colour assignment.
type Options struct {
	// Stride is how far a category's cursor advances after each draw,
	// modulo the pool length. Values <= 0 mean 1.
	Stride int
	// OnCollision, when set, is called for every program whose colour and
	// glyph pair was already handed out. Collisions are not errors.
	OnCollision func(Collision)
}

// DefaultOptions holds the fallback assignment configuration.
var DefaultOptions = &Options{Stride: 1}

// Assignment is the colour and glyph chosen for one program.
type Assignment struct {
	Program Program
	Symbol  byte
	Color   Color
}

// Collision describes a program that received a colour and glyph pair an
// earlier program already uses.
type Collision struct {
	Program Program
	First   Program
	ColorID int
	Symbol  byte
}

func (c Collision) String() string {
	return fmt.Sprintf("program %d color %d symbol %q (first used by program %d)", c.Program, c.ColorID, c.Symbol, c.First)
}

// Table holds one assignment per program, indexed by program.
type Table [NumPrograms]Assignment

// ColorIDs returns the palette index of every program in order.
func (t *Table) ColorIDs() [NumPrograms]uint8 {
	var ids [NumPrograms]uint8
	for i, a := range t {
		ids[i] = uint8(a.Color.ID)
	}
	return ids
}

// Symbols returns the glyph of every program in order.
func (t *Table) Symbols() string {
	b := make([]byte, NumPrograms)
	for i, a := range t {
		b[i] = a.Symbol
	}
	return string(b)
}

type colorSymbol struct {
	id     int
	symbol byte
}

// Assign gives every program a colour from its category's pool. For each
// (category, glyph) key, in key order, it reserves as many consecutive draws
// as the key has programs; a category's cursor wraps around its pool, so
// colours repeat once demand exceeds supply. Programs are then walked in
// order and take their key's reservations first to last.
func Assign(symbols *SymbolTable, instruments, percussion *Pool, opts *Options) (*Table, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	if symbols == nil {
		symbols = DefaultSymbolTable()
	}
	stride := opts.Stride
	if stride <= 0 {
		stride = 1
	}
	pools := [2]*Pool{Instrument: instruments, Percussion: percussion}
	for cat, p := range pools {
		if p.Len() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPool, Category(cat))
		}
	}

	// Reservations for all keys live in one buffer; start[key] is where a
	// key's run begins and taken[key] how much of it has been consumed.
	var reserved [NumPrograms]Color
	start := make(map[SymbolKey]int, len(symbols.Keys()))
	var cursor [2]int
	n := 0
	for _, key := range symbols.Keys() {
		pool := pools[key.Category]
		start[key] = n
		for k := symbols.Count(key); k > 0; k-- {
			reserved[n] = pool.Colors[cursor[key.Category]]
			n++
			cursor[key.Category] = (cursor[key.Category] + stride) % pool.Len()
		}
	}

	table := new(Table)
	taken := make(map[SymbolKey]int, len(start))
	seen := make(map[colorSymbol]Program, NumPrograms)
	for i := 0; i < NumPrograms; i++ {
		p := Program(i)
		key := symbols.Key(p)
		c := reserved[start[key]+taken[key]]
		taken[key]++

		pair := colorSymbol{id: c.ID, symbol: key.Symbol}
		if first, dup := seen[pair]; dup {
			if opts.OnCollision != nil {
				opts.OnCollision(Collision{Program: p, First: first, ColorID: c.ID, Symbol: key.Symbol})
			}
		} else {
			seen[pair] = p
		}
		table[i] = Assignment{Program: p, Symbol: key.Symbol, Color: c}
	}
	return table, nil
}
