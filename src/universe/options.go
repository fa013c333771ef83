package universe

import (
	"errors"
	"fmt"
	"math/rand"
)

//Domain errors for the universe construction
var (
	ErrInvalidDimensions = errors.New("universe: width and height must be greater than zero")
	ErrUnknownStorage    = errors.New("universe: unknown storage kind")
	ErrUnknownSeeding    = errors.New("universe: unknown seeding policy")
	ErrUnknownPattern    = errors.New("universe: unknown pattern")
)

//Seeding is the policy used to fill the current generation on construction
type Seeding string

const (
	SeedRandom Seeding = "random"
	SeedDead   Seeding = "dead"
)

//BitSource produces the random values used by SeedRandom, *rand.Rand satisfies it
type BitSource interface {
	Intn(n int) int
}

//Stamp places the library pattern at X,Y of the universe on construction
type Stamp struct {
	Pattern string
	X       uint32
	Y       uint32
}

//Options represents the Universe's construction options
type Options struct {
	Width   uint32
	Height  uint32
	Storage StorageKind
	Seeding Seeding
	Seed    int64     //used when Rand is nil
	Rand    BitSource //random bit source, optional
	Stamps  []Stamp   //nil means DefaultStamps, empty slice means no stamps
}

//default options
const (
	DefWidth   = 64
	DefHeight  = 64
	DefStorage = StorageDense
	DefSeeding = SeedRandom
)

var DefaultOptions = Options{
	Width:   DefWidth,
	Height:  DefHeight,
	Storage: DefStorage,
	Seeding: DefSeeding,
}

//spaceShipAnchors and gliderAnchors tile two interleaved families across the default 64x64 field
var (
	spaceShipAnchors = [][2]uint32{
		{0, 0}, {24, 8}, {48, 16}, {8, 24}, {32, 32}, {56, 40}, {16, 48}, {40, 56},
	}
	gliderAnchors = [][2]uint32{
		{40, 0}, {0, 8}, {24, 16}, {48, 24}, {8, 32}, {32, 40}, {56, 48}, {16, 56},
	}
)

//DefaultStamps returns the stamps placed on construction when Options.Stamps is nil
func DefaultStamps() []Stamp {
	stamps := make([]Stamp, 0, len(spaceShipAnchors)+len(gliderAnchors))
	for _, a := range spaceShipAnchors {
		stamps = append(stamps, Stamp{Pattern: "spaceship", X: a[0], Y: a[1]})
	}
	for _, a := range gliderAnchors {
		stamps = append(stamps, Stamp{Pattern: "glider", X: a[0], Y: a[1]})
	}
	return stamps
}

//validate checks the options and fills the defaults for the empty fields
func (o *Options) validate() error {
	if o.Width == 0 || o.Height == 0 {
		return ErrInvalidDimensions
	}
	if o.Storage == "" {
		o.Storage = DefStorage
	}
	if o.Seeding == "" {
		o.Seeding = DefSeeding
	}
	if o.Seeding != SeedRandom && o.Seeding != SeedDead {
		return fmt.Errorf("%w: %q", ErrUnknownSeeding, o.Seeding)
	}
	if o.Rand == nil && o.Seeding == SeedRandom {
		o.Rand = rand.New(rand.NewSource(o.Seed))
	}
	return nil
}
