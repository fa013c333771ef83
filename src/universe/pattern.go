package universe

//PatternCell is one entry of the Pattern, x and y are relative to the pattern's top-left corner
type PatternCell struct {
	X    uint32
	Y    uint32
	Cell Cell
}

//Pattern is the seeding stamp which can be placed into the universe by GeneratePattern
//it holds at most one entry for every x,y
type Pattern struct {
	Name  string
	cells []PatternCell
}

//NewPattern creates the empty pattern
func NewPattern(name string) *Pattern {
	return &Pattern{Name: name}
}

//RectPattern creates the pattern filled with Dead cells in the rectangle width x height
func RectPattern(name string, width uint32, height uint32) *Pattern {
	p := &Pattern{Name: name, cells: make([]PatternCell, 0, width*height)}
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			p.cells = append(p.cells, PatternCell{X: x, Y: y, Cell: Dead})
		}
	}
	return p
}

//SetCell overwrites the entry at x,y or appends the new one
func (p *Pattern) SetCell(x uint32, y uint32, c Cell) {
	for i := range p.cells {
		if p.cells[i].X == x && p.cells[i].Y == y {
			p.cells[i].Cell = c
			return
		}
	}
	p.cells = append(p.cells, PatternCell{X: x, Y: y, Cell: c})
}

//RemoveCell deletes the entry at x,y if any
func (p *Pattern) RemoveCell(x uint32, y uint32) {
	for i := range p.cells {
		if p.cells[i].X == x && p.cells[i].Y == y {
			p.cells = append(p.cells[:i], p.cells[i+1:]...)
			return
		}
	}
}

//Cell returns the entry value at x,y and whether the entry exists
func (p *Pattern) Cell(x uint32, y uint32) (Cell, bool) {
	for _, pc := range p.cells {
		if pc.X == x && pc.Y == y {
			return pc.Cell, true
		}
	}
	return Dead, false
}

//Size returns the largest x and y found in the pattern
func (p *Pattern) Size() (width uint32, height uint32) {
	for _, pc := range p.cells {
		if pc.X > width {
			width = pc.X
		}
		if pc.Y > height {
			height = pc.Y
		}
	}
	return
}

//Cells returns a copy of the entries in insertion order
func (p *Pattern) Cells() []PatternCell {
	cells := make([]PatternCell, len(p.cells))
	copy(cells, p.cells)
	return cells
}

//LiveCells returns the number of Alive entries
func (p *Pattern) LiveCells() int {
	n := 0
	for _, pc := range p.cells {
		if pc.Cell == Alive {
			n++
		}
	}
	return n
}

//Len returns the number of entries
func (p *Pattern) Len() int {
	return len(p.cells)
}
