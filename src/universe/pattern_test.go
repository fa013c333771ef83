package universe

import (
	"errors"
	"reflect"
	"testing"
)

func TestPattern_SetCellOverwrites(t *testing.T) {
	p := NewPattern("p")
	p.SetCell(1, 2, Alive)
	p.SetCell(1, 2, Dead)
	p.SetCell(3, 0, Alive)
	if p.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", p.Len())
	}
	if c, ok := p.Cell(1, 2); !ok || c != Dead {
		t.Errorf("expected Dead at 1,2, got %v %v", c, ok)
	}
}

func TestPattern_RemoveCell(t *testing.T) {
	p := RectPattern("r", 3, 2)
	if p.Len() != 6 {
		t.Fatalf("expected 6 entries, got %d", p.Len())
	}
	p.RemoveCell(1, 1)
	p.RemoveCell(1, 1)
	p.RemoveCell(10, 10)
	if p.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", p.Len())
	}
	if _, ok := p.Cell(1, 1); ok {
		t.Error("1,1 must be removed")
	}
}

func TestPattern_SizeAndCells(t *testing.T) {
	p := NewPattern("p")
	if w, h := p.Size(); w != 0 || h != 0 {
		t.Errorf("empty pattern size %d,%d", w, h)
	}
	p.SetCell(4, 1, Alive)
	p.SetCell(2, 5, Dead)
	if w, h := p.Size(); w != 4 || h != 5 {
		t.Errorf("expected size 4,5, got %d,%d", w, h)
	}
	cells := p.Cells()
	want := []PatternCell{{4, 1, Alive}, {2, 5, Dead}}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("cells %v, want %v", cells, want)
	}
	//the copy doesn't alias the pattern
	cells[0].Cell = Dead
	if c, _ := p.Cell(4, 1); c != Alive {
		t.Error("Cells must return a copy")
	}
}

func TestPatternLibrary(t *testing.T) {
	//'#' is the live cell, every other entry of the rectangle is Dead
	tests := []struct {
		name string
		rows []string
	}{
		{"acorn", []string{
			"...........",
			"...........",
			"..###..##..",
			".....#.....",
			".......#...",
			"...........",
			"...........",
		}},
		{"circle", []string{
			"........",
			"........",
			"...##...",
			"..#..#..",
			"..#..#..",
			"...##...",
			"........",
			"........",
		}},
		{"fpentomino", []string{
			".......",
			".......",
			"..##...",
			"...##..",
			"...#...",
			".......",
			".......",
		}},
		{"glider", []string{
			".......",
			".......",
			"..###..",
			"..#....",
			"...#...",
			".......",
			".......",
		}},
		{"oval", []string{
			"........",
			"........",
			"...##...",
			"..#..#..",
			"...##...",
			"........",
			"........",
		}},
		{"spaceship", []string{
			".........",
			".........",
			"..#..#...",
			"......#..",
			"..#...#..",
			"...####..",
			".........",
			".........",
		}},
		{"square", []string{
			"......",
			"......",
			"..##..",
			"..##..",
			"......",
			"......",
		}},
	}
	if names := PatternNames(); len(names) != len(tests) {
		t.Fatalf("library has %v", names)
	}
	for i, tt := range tests {
		if PatternNames()[i] != tt.name {
			t.Errorf("name %d: %q, want %q", i, PatternNames()[i], tt.name)
		}
		p, err := PatternByName(tt.name)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		width, height := uint32(len(tt.rows[0])), uint32(len(tt.rows))
		if p.Len() != int(width*height) {
			t.Errorf("%s: %d entries, want %d", tt.name, p.Len(), width*height)
		}
		if w, h := p.Size(); w != width-1 || h != height-1 {
			t.Errorf("%s: size %d,%d", tt.name, w, h)
		}
		live := 0
		for y, row := range tt.rows {
			for x, ch := range row {
				c, ok := p.Cell(uint32(x), uint32(y))
				if !ok {
					t.Errorf("%s: no entry at %d,%d", tt.name, x, y)
					continue
				}
				if want := ch == '#'; c.IsAlive() != want {
					t.Errorf("%s: cell %d,%d is %v", tt.name, x, y, c)
				}
				if ch == '#' {
					live++
				}
			}
		}
		if p.LiveCells() != live {
			t.Errorf("%s: %d live cells, want %d", tt.name, p.LiveCells(), live)
		}
	}
}

func TestPatternByName(t *testing.T) {
	if p, err := PatternByName(" Glider "); err != nil || p.Name != "glider" {
		t.Errorf("expected glider, got %v %v", p, err)
	}
	if _, err := PatternByName("gosper"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}
	//every call returns a new instance
	a, _ := PatternByName("square")
	b, _ := PatternByName("square")
	a.SetCell(0, 0, Alive)
	if c, _ := b.Cell(0, 0); c != Dead {
		t.Error("library patterns must not be shared")
	}
}
