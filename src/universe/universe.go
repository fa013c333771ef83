package universe

import (
	"fmt"
	"strings"
	"time"
)

/*
	Universe is the toroidal Game of Life field
	it keeps two generations: current and next, the tick computes next from current and swaps them
	the field edges are adjacent to the opposite edges

	the Universe isn't safe for concurrent use, it must be driven by one caller
*/
type Universe struct {
	width      uint32
	height     uint32
	storage    StorageKind
	current    Storage
	next       Storage
	deltas     [8][2]uint32 //neighbor offsets as non negative (column, row) deltas
	generation int
}

//New creates the 64x64 universe settled with random data and the default stamps
func New() *Universe {
	o := DefaultOptions
	o.Seed = time.Now().UnixNano()
	u, err := NewWithOptions(&o)
	if err != nil {
		//the default options are always valid
		panic(err)
	}
	return u
}

//NewWithOptions creates the universe configured by o, nil means DefaultOptions
func NewWithOptions(o *Options) (*Universe, error) {
	if o == nil {
		d := DefaultOptions
		o = &d
	}
	opts := *o
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cells := int(opts.Width) * int(opts.Height)
	current, err := newStorage(opts.Storage, cells)
	if err != nil {
		return nil, err
	}
	next, err := newStorage(opts.Storage, cells)
	if err != nil {
		return nil, err
	}

	u := &Universe{
		width:   opts.Width,
		height:  opts.Height,
		storage: opts.Storage,
		current: current,
		next:    next,
	}
	u.initDeltas()

	if opts.Seeding == SeedRandom {
		u.settleRandom(opts.Rand)
	}

	stamps := opts.Stamps
	if stamps == nil {
		stamps = DefaultStamps()
	}
	for _, s := range stamps {
		p, err := PatternByName(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("stamp at %d,%d: %w", s.X, s.Y, err)
		}
		u.GeneratePattern(p, s.X, s.Y)
	}
	return u, nil
}

//initDeltas precomputes the Moore neighborhood offsets
//"minus one" is expressed as adding size-1, so the coordinates stay unsigned
func (u *Universe) initDeltas() {
	left := u.width - 1
	up := u.height - 1
	u.deltas = [8][2]uint32{
		{1, 0},
		{1, 1},
		{0, 1},
		{left, 1},
		{left, 0},
		{left, up},
		{0, up},
		{1, up},
	}
}

//settleRandom makes every cell Alive with probability 0.5
func (u *Universe) settleRandom(src BitSource) {
	for i := 0; i < u.current.Len(); i++ {
		u.current.Set(i, Cell(src.Intn(2)))
	}
}

//Index returns the linear index of row, column wrapping both around the field
func (u *Universe) Index(row uint32, column uint32) int {
	return int((row%u.height)*u.width + column%u.width)
}

//LiveNeighborCount returns the number of Alive cells around row, column
func (u *Universe) LiveNeighborCount(row uint32, column uint32) uint8 {
	var count uint8
	for _, d := range u.deltas {
		neighborRow := (row + d[1]) % u.height
		neighborColumn := (column + d[0]) % u.width
		count += uint8(u.current.Get(u.Index(neighborRow, neighborColumn)))
	}
	return count
}

//NextState applies the rules to the cell having n live neighbors
func NextState(c Cell, n uint8) Cell {
	switch {
	case c == Dead && n == 3:
		return Alive
	case c == Alive && (n == 2 || n == 3):
		return Alive
	}
	return Dead
}

//Tick advances the universe by one generation
func (u *Universe) Tick() {
	for row := uint32(0); row < u.height; row++ {
		for column := uint32(0); column < u.width; column++ {
			idx := u.Index(row, column)
			n := u.LiveNeighborCount(row, column)
			u.next.Set(idx, NextState(u.current.Get(idx), n))
		}
	}
	u.current, u.next = u.next, u.current
	u.generation++
}

//GeneratePattern stamps the pattern with its top-left corner at xBase, yBase
//both Alive and Dead entries are written, coordinates wrap around the field
func (u *Universe) GeneratePattern(p *Pattern, xBase uint32, yBase uint32) {
	//the base is reduced first so xBase+x can't overflow uint32
	xBase, yBase = xBase%u.width, yBase%u.height
	for _, pc := range p.cells {
		u.current.Set(u.Index(yBase+pc.Y, xBase+pc.X), pc.Cell)
	}
}

func (u *Universe) Width() uint32 {
	return u.width
}

func (u *Universe) Height() uint32 {
	return u.height
}

//Storage returns the storage kind used by the universe
func (u *Universe) Storage() StorageKind {
	return u.storage
}

//Generation returns the number of ticks done since construction or the last Clear
func (u *Universe) Generation() int {
	return u.generation
}

//Cells returns the read-only view over the current generation
//dense: width*height bytes of 0/1, packed: ceil(width*height/8) bytes, 8 cells per byte LSB first
//the view is valid until the next Tick
func (u *Universe) Cells() []byte {
	return u.current.Bytes()
}

//Prev returns the read-only view over the previous generation, same layout as Cells
func (u *Universe) Prev() []byte {
	return u.next.Bytes()
}

//Get returns the cell at row, column wrapping both around the field
func (u *Universe) Get(row uint32, column uint32) Cell {
	return u.current.Get(u.Index(row, column))
}

//Set writes the cell at row, column of the current generation
func (u *Universe) Set(row uint32, column uint32, c Cell) {
	u.current.Set(u.Index(row, column), c)
}

//Toggle inverses the cell state at row, column
func (u *Universe) Toggle(row uint32, column uint32) {
	idx := u.Index(row, column)
	u.current.Set(idx, cellOf(!u.current.Get(idx).IsAlive()))
}

//Clear kills all cells of both generations and resets the generation counter
func (u *Universe) Clear() {
	for i := 0; i < u.current.Len(); i++ {
		u.current.Set(i, Dead)
		u.next.Set(i, Dead)
	}
	u.generation = 0
}

//Randomize refills the current generation with random data
func (u *Universe) Randomize(src BitSource) {
	u.settleRandom(src)
}

//Population returns the number of Alive cells in the current generation
func (u *Universe) Population() int {
	n := 0
	for i := 0; i < u.current.Len(); i++ {
		n += int(u.current.Get(i))
	}
	return n
}

//Changed reports whether the last tick changed any cell
func (u *Universe) Changed() bool {
	for i := 0; i < u.current.Len(); i++ {
		if u.current.Get(i) != u.next.Get(i) {
			return true
		}
	}
	return false
}

//Render returns the text form of the current generation, one line per row
func (u *Universe) Render() string {
	return u.String()
}

func (u *Universe) String() string {
	var b strings.Builder
	b.Grow(int(u.height) * (int(u.width)*3 + 1))
	for row := uint32(0); row < u.height; row++ {
		for column := uint32(0); column < u.width; column++ {
			b.WriteRune(u.Get(row, column).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
