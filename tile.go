package osrmtest

import "github.com/paulmach/orb/maptile"

// A Tile is a tile coordinate and the expected size of the tile in bytes.
type Tile struct {
	At   maptile.Tile
	Size int
}

// TestTile returns a tile that covers part of the test dataset.
func TestTile() Tile {
	return Tile{
		At:   maptile.New(17059, 11948, 15),
		Size: 114000,
	}
}
