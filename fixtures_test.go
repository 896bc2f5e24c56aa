package osrmtest_test

import (
	"bytes"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"

	"github.com/twpayne/go-osrmtest"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	fixtures := osrmtest.Load(
		osrmtest.WithEnv(map[string]string{
			osrmtest.DataPathEnvVar: dir,
		}),
		osrmtest.WithLogger(log.New(&buf)),
	)

	assert.Equal(t, osrmtest.ThreeTestCoordinates(), fixtures.ThreeTestCoordinates())
	assert.Equal(t, fixtures.ThreeTestCoordinates()[:2], fixtures.TwoTestCoordinates())
	assert.Equal(t, osrmtest.TestTile(), fixtures.TestTile())
	assert.Equal(t, filepath.Join(dir, "ch", "monaco.osrm"), fixtures.DataPaths().CH)
	assert.Contains(t, buf.String(), "Setting custom data path")
}

func TestFixturesCannotBeModified(t *testing.T) {
	fixtures := osrmtest.Load(osrmtest.WithEnv(nil))

	three := fixtures.ThreeTestCoordinates()
	three[1][0] = 0
	two := fixtures.TwoTestCoordinates()
	two[0] = orb.Point{}
	dataPaths := fixtures.DataPaths()
	dataPaths.CH = "modified"

	assert.Equal(t, osrmtest.ThreeTestCoordinates(), fixtures.ThreeTestCoordinates())
	assert.Equal(t, fixtures.ThreeTestCoordinates()[:2], fixtures.TwoTestCoordinates())
	assert.NotEqual(t, "modified", fixtures.DataPaths().CH)
}

func TestDefault(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*osrmtest.Fixtures, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = osrmtest.Default()
		}()
	}
	wg.Wait()

	for _, fixtures := range results {
		assert.True(t, fixtures == osrmtest.Default())
	}

	first := osrmtest.Default()
	coords := first.ThreeTestCoordinates()
	coords[1][0] = 0

	second := osrmtest.Default()
	assert.Equal(t, 3, len(second.ThreeTestCoordinates()))
	assert.Equal(t, orb.Point{7.41546, 43.73077}, second.ThreeTestCoordinates()[1])
	assert.Equal(t, second.ThreeTestCoordinates()[:2], second.TwoTestCoordinates())
	dataPaths := second.DataPaths()
	assert.True(t, filepath.IsAbs(dataPaths.CH))
	assert.True(t, filepath.IsAbs(dataPaths.MLD))
	assert.True(t, filepath.IsAbs(dataPaths.CoreCH))
}
