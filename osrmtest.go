// Package osrmtest provides fixtures for testing a routing engine against the
// Monaco test dataset: a handful of coordinates, a vector tile, and the
// locations of the datasets pre-built for each routing algorithm.
//
// The datasets live in ../data relative to this package unless the
// OSRM_DATA_PATH environment variable names another directory.
package osrmtest

import (
	"slices"

	"github.com/paulmach/orb"
)

// DatasetName is the name of the test dataset.
const DatasetName = "monaco"

// Somewhere in Monaco, see
// https://www.openstreetmap.org/#map=18/43.73185/7.41772.
var threeTestCoordinates = [...]orb.Point{
	{7.41337, 43.72956},
	{7.41546, 43.73077},
	{7.41862, 43.73216},
}

// ThreeTestCoordinates returns three nearby coordinates in the test dataset as
// longitude, latitude pairs.
func ThreeTestCoordinates() []orb.Point {
	return slices.Clone(threeTestCoordinates[:])
}

// TwoTestCoordinates returns the first two of ThreeTestCoordinates.
func TwoTestCoordinates() []orb.Point {
	return slices.Clone(threeTestCoordinates[:2])
}
