package osrmtest

import (
	"slices"
	"sync"

	"github.com/paulmach/orb"
)

// Fixtures bundles all fixtures so that they can be loaded once and passed to
// the code under test. Fixtures are read-only: every accessor returns a copy,
// so Fixtures can be shared between consumers.
type Fixtures struct {
	coordinates [len(threeTestCoordinates)]orb.Point
	tile        Tile
	dataPaths   DataPaths
}

// Load returns new Fixtures with the given options.
func Load(opts ...Option) *Fixtures {
	return &Fixtures{
		coordinates: threeTestCoordinates,
		tile:        TestTile(),
		dataPaths:   *LoadDataPaths(opts...),
	}
}

// ThreeTestCoordinates returns f's three test coordinates.
func (f *Fixtures) ThreeTestCoordinates() []orb.Point {
	return slices.Clone(f.coordinates[:])
}

// TwoTestCoordinates returns the first two of f's three test coordinates.
func (f *Fixtures) TwoTestCoordinates() []orb.Point {
	return slices.Clone(f.coordinates[:2])
}

// TestTile returns f's test tile.
func (f *Fixtures) TestTile() Tile {
	return f.tile
}

// DataPaths returns f's dataset paths.
func (f *Fixtures) DataPaths() DataPaths {
	return f.dataPaths
}

// Default returns the process-wide Fixtures. They are loaded from the process
// environment on the first call, so an overridden data directory is logged at
// most once per process.
var Default = newDefault()

func newDefault(opts ...Option) func() *Fixtures {
	return sync.OnceValue(func() *Fixtures {
		return Load(opts...)
	})
}
