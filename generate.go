package midicolors

// Result carries every stage of one generator run.
type Result struct {
	Symbols     *SymbolTable
	Palette     []Color
	Instruments *Pool
	Percussion  *Pool
	Table       *Table
	Collisions  []Collision
}

// Pool returns the pool of the given category.
func (r *Result) Pool(cat Category) *Pool {
	if cat == Percussion {
		return r.Percussion
	}
	return r.Instruments
}

// Generate runs the whole pipeline on the default symbol table: build the
// palette, partition it into pools and assign colours. The result is fully
// determined by opts.Stride.
func Generate(opts *Options) (*Result, error) {
	return GenerateWith(DefaultSymbolTable(), opts)
}

// GenerateWith is Generate for a custom symbol table.
func GenerateWith(symbols *SymbolTable, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	if symbols == nil {
		symbols = DefaultSymbolTable()
	}
	res := &Result{Symbols: symbols, Palette: BuildPalette()}
	res.Instruments, res.Percussion = Partition(res.Palette)

	local := *opts
	local.OnCollision = func(c Collision) {
		res.Collisions = append(res.Collisions, c)
		if opts.OnCollision != nil {
			opts.OnCollision(c)
		}
	}
	table, err := Assign(symbols, res.Instruments, res.Percussion, &local)
	if err != nil {
		return nil, err
	}
	res.Table = table
	return res, nil
}
