package universe

import (
	"fmt"
	"sort"
	"strings"
)

//the library of the predefined patterns
//every pattern is a Dead rectangle with the live cells placed inside with the margin of 2 cells

//patternFactories maps the lowercase pattern name to its factory
var patternFactories = map[string]func() *Pattern{
	"glider":     Glider,
	"spaceship":  SpaceShip,
	"fpentomino": FPentomino,
	"acorn":      Acorn,
	"oval":       Oval,
	"circle":     Circle,
	"square":     Square,
}

//PatternByName returns the new instance of the library pattern, name is case insensitive
func PatternByName(name string) (*Pattern, error) {
	f, ok := patternFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return f(), nil
}

//PatternNames returns the sorted names of the library patterns
func PatternNames() []string {
	names := make([]string, 0, len(patternFactories))
	for k := range patternFactories {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func stamp(name string, width uint32, height uint32, live [][2]uint32) *Pattern {
	p := RectPattern(name, width, height)
	for _, xy := range live {
		p.SetCell(xy[0], xy[1], Alive)
	}
	return p
}

//Glider moves by one cell diagonally every 4 generations
func Glider() *Pattern {
	return stamp("glider", 7, 7, [][2]uint32{
		{2, 2}, {3, 2}, {4, 2},
		{2, 3},
		{3, 4},
	})
}

//SpaceShip is the lightweight spaceship
func SpaceShip() *Pattern {
	return stamp("spaceship", 9, 8, [][2]uint32{
		{2, 2}, {5, 2},
		{6, 3},
		{2, 4}, {6, 4},
		{3, 5}, {4, 5}, {5, 5}, {6, 5},
	})
}

//FPentomino is the R-pentomino methuselah
func FPentomino() *Pattern {
	return stamp("fpentomino", 7, 7, [][2]uint32{
		{2, 2}, {3, 2},
		{3, 3}, {4, 3},
		{3, 4},
	})
}

func Acorn() *Pattern {
	return stamp("acorn", 11, 7, [][2]uint32{
		{2, 2}, {3, 2}, {4, 2}, {7, 2}, {8, 2},
		{5, 3},
		{7, 4},
	})
}

//Oval is the beehive still life
func Oval() *Pattern {
	return stamp("oval", 8, 7, [][2]uint32{
		{3, 2}, {4, 2},
		{2, 3}, {5, 3},
		{3, 4}, {4, 4},
	})
}

//Circle is the pond still life
func Circle() *Pattern {
	return stamp("circle", 8, 8, [][2]uint32{
		{3, 2}, {4, 2},
		{2, 3}, {5, 3},
		{2, 4}, {5, 4},
		{3, 5}, {4, 5},
	})
}

//Square is the block still life
func Square() *Pattern {
	return stamp("square", 6, 6, [][2]uint32{
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	})
}
