package universe

//Cell is the state of one position of the grid
//the value is stored as is in the dense storage, so Dead must stay 0 and Alive 1
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Glyphs used by the text rendering
const (
	AliveGlyph = '◼'
	DeadGlyph  = '◻'
)

func (c Cell) IsAlive() bool {
	return c == Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

//Glyph returns the rune used for the cell by the text rendering
func (c Cell) Glyph() rune {
	if c == Alive {
		return AliveGlyph
	}
	return DeadGlyph
}

//cellOf converts the bool state to the Cell
func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
