package osrmtest

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnknownAlgorithm is returned when parsing an unknown algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// An Algorithm is a routing algorithm. Each algorithm needs the dataset to be
// pre-processed into its own layout.
type Algorithm int

const (
	CH     Algorithm = iota // Contraction hierarchies.
	MLD                     // Multi-level Dijkstra.
	CoreCH                  // Core contraction hierarchies.
)

var algorithmNames = [...]string{
	CH:     "ch",
	MLD:    "mld",
	CoreCH: "corech",
}

var algorithmDescriptions = [...]string{
	CH:     "contraction hierarchies",
	MLD:    "multi-level Dijkstra",
	CoreCH: "core contraction hierarchies",
}

// Algorithms returns all algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{CH, MLD, CoreCH}
}

// ParseAlgorithm returns the algorithm named s. Names are case insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// String returns a's short name, which is also the name of the subdirectory
// holding a's dataset.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Description returns a human-readable description of a.
func (a Algorithm) Description() string {
	if !a.valid() {
		return a.String()
	}
	return algorithmDescriptions[a]
}

// RelPath returns the slash-separated path of a's dataset relative to the data
// directory.
func (a Algorithm) RelPath() string {
	return path.Join(a.String(), DatasetName+".osrm")
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}
