package osrmtest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

// Exists returns whether the dataset at path exists.
func Exists(path string) (bool, error) {
	switch _, err := os.Stat(path); {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", path, err)
	default:
		return true, nil
	}
}

// Missing returns those of algorithms whose datasets do not exist. If no
// algorithms are given then all algorithms are checked.
func (p *DataPaths) Missing(algorithms ...Algorithm) ([]Algorithm, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}
	var missing []Algorithm
	for _, algorithm := range algorithms {
		ok, err := Exists(p.Path(algorithm))
		if err != nil {
			return nil, err
		}
		if !ok {
			missing = append(missing, algorithm)
		}
	}
	return missing, nil
}

// RequireDataset skips the test if the dataset at path does not exist.
func RequireDataset(tb testing.TB, path string) {
	tb.Helper()
	ok, err := Exists(path)
	if err != nil {
		tb.Fatal(err)
	}
	if !ok {
		tb.Skipf("%s: dataset not found, build the test data or set %s", path, DataPathEnvVar)
	}
}
