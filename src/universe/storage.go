package universe

import "fmt"

//Storage keeps one generation of cells addressed by the linear index
//the universe engine works with the cells through this interface only
type Storage interface {
	Get(index int) Cell
	Set(index int, c Cell)
	//Len returns the number of cells (not the number of bytes)
	Len() int
	//Bytes returns the backing buffer, row-major
	//the caller must not modify it
	Bytes() []byte
}

//StorageKind selects the storage layout
type StorageKind string

const (
	StorageDense  StorageKind = "dense"
	StoragePacked StorageKind = "packed"
)

//StorageKinds lists the supported layouts
var StorageKinds = []StorageKind{StorageDense, StoragePacked}

//newStorage allocates the storage of the given kind with all cells Dead
func newStorage(kind StorageKind, cells int) (Storage, error) {
	switch kind {
	case StorageDense:
		return NewDenseStorage(cells), nil
	case StoragePacked:
		return NewPackedStorage(cells), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, kind)
}

//DenseStorage is one cell per byte
type DenseStorage struct {
	cells []byte
}

func NewDenseStorage(cells int) *DenseStorage {
	return &DenseStorage{cells: make([]byte, cells)}
}

func (s *DenseStorage) Get(index int) Cell {
	return Cell(s.cells[index])
}

func (s *DenseStorage) Set(index int, c Cell) {
	s.cells[index] = byte(c)
}

func (s *DenseStorage) Len() int {
	return len(s.cells)
}

func (s *DenseStorage) Bytes() []byte {
	return s.cells
}

//CellGroup packs 8 cells into one byte, bit i (LSB first) holds cell i
type CellGroup byte

//GroupSize is the number of cells in one CellGroup
const GroupSize = 8

//Get returns the cell at bit
//panics if bit is out of [0, 8)
func (g CellGroup) Get(bit uint) Cell {
	checkBit(bit)
	return Cell((g >> bit) & 1)
}

//Set writes the cell at bit, toggling the bit only when the state differs
//panics if bit is out of [0, 8)
func (g *CellGroup) Set(bit uint, c Cell) {
	checkBit(bit)
	cur := (*g >> bit) & 1
	*g ^= (cur ^ CellGroup(c&1)) << bit
}

func checkBit(bit uint) {
	if bit >= GroupSize {
		panic(fmt.Sprintf("universe: cell group bit index out of range: %d (must be < %d)", bit, GroupSize))
	}
}

//PackedStorage keeps 8 cells per byte
type PackedStorage struct {
	groups []byte
	cells  int
}

func NewPackedStorage(cells int) *PackedStorage {
	return &PackedStorage{
		groups: make([]byte, (cells+GroupSize-1)/GroupSize),
		cells:  cells,
	}
}

func (s *PackedStorage) Get(index int) Cell {
	return CellGroup(s.groups[index/GroupSize]).Get(uint(index % GroupSize))
}

func (s *PackedStorage) Set(index int, c Cell) {
	(*CellGroup)(&s.groups[index/GroupSize]).Set(uint(index%GroupSize), c)
}

func (s *PackedStorage) Len() int {
	return s.cells
}

func (s *PackedStorage) Bytes() []byte {
	return s.groups
}
