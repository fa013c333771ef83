package universe

import (
	"math/rand"
	"testing"
)

func TestCellGroup_SetAllCombinations(t *testing.T) {
	for bit := uint(0); bit < GroupSize; bit++ {
		for _, cur := range []Cell{Dead, Alive} {
			for _, nw := range []Cell{Dead, Alive} {
				//the neighbor bits must survive the write
				g := CellGroup(0xA5)
				g.Set(bit, cur)
				g.Set(bit, nw)
				if got := g.Get(bit); got != nw {
					t.Errorf("bit %d: %v -> %v, got %v", bit, cur, nw, got)
				}
				for other := uint(0); other < GroupSize; other++ {
					if other == bit {
						continue
					}
					if want := Cell((0xA5 >> other) & 1); g.Get(other) != want {
						t.Errorf("bit %d write changed bit %d", bit, other)
					}
				}
			}
		}
	}
}

func TestCellGroup_RangeCheck(t *testing.T) {
	var g CellGroup
	for bit := uint(0); bit < GroupSize; bit++ {
		g.Set(bit, Alive)
		_ = g.Get(bit)
	}
	if g != 0xFF {
		t.Fatalf("expected all bits set, got %08b", g)
	}

	for _, bit := range []uint{8, 9, 64} {
		assertPanics(t, "Get", func() { _ = g.Get(bit) })
		assertPanics(t, "Set", func() { g.Set(bit, Dead) })
	}
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestStorage_Sizes(t *testing.T) {
	tests := []struct {
		cells       int
		denseBytes  int
		packedBytes int
	}{
		{64 * 64, 4096, 512},
		{7 * 7, 49, 7},
		{1, 1, 1},
		{9, 9, 2},
	}
	for _, tt := range tests {
		d := NewDenseStorage(tt.cells)
		p := NewPackedStorage(tt.cells)
		if d.Len() != tt.cells || p.Len() != tt.cells {
			t.Errorf("%d cells: Len dense %d packed %d", tt.cells, d.Len(), p.Len())
		}
		if len(d.Bytes()) != tt.denseBytes {
			t.Errorf("%d cells: dense bytes %d, want %d", tt.cells, len(d.Bytes()), tt.denseBytes)
		}
		if len(p.Bytes()) != tt.packedBytes {
			t.Errorf("%d cells: packed bytes %d, want %d", tt.cells, len(p.Bytes()), tt.packedBytes)
		}
	}
}

func TestStorage_PackedLayout(t *testing.T) {
	p := NewPackedStorage(16)
	p.Set(0, Alive)
	p.Set(3, Alive)
	p.Set(9, Alive)
	if b := p.Bytes(); b[0] != 0x09 || b[1] != 0x02 {
		t.Fatalf("unexpected layout %08b %08b", b[0], b[1])
	}
	p.Set(3, Dead)
	p.Set(3, Dead)
	if b := p.Bytes(); b[0] != 0x01 {
		t.Fatalf("unexpected layout after clear %08b", b[0])
	}
}

func TestStorage_PackedDenseEquivalence(t *testing.T) {
	const cells = 1000
	rnd := rand.New(rand.NewSource(7))
	d := NewDenseStorage(cells)
	p := NewPackedStorage(cells)
	for i := 0; i < 20000; i++ {
		idx := rnd.Intn(cells)
		c := Cell(rnd.Intn(2))
		d.Set(idx, c)
		p.Set(idx, c)
	}
	for i := 0; i < cells; i++ {
		if d.Get(i) != p.Get(i) {
			t.Fatalf("cell %d differs: dense %v packed %v", i, d.Get(i), p.Get(i))
		}
	}
}

func TestNewStorage_Unknown(t *testing.T) {
	if _, err := newStorage("sparse", 10); err == nil {
		t.Fatal("expected error")
	}
}
