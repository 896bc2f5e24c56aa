package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/paulmach/orb/geojson"

	"github.com/twpayne/go-osrmtest"
)

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	flagSet := flag.NewFlagSet("osrm-fixtures", flag.ContinueOnError)
	envFile := flagSet.String("env-file", ".env", "environment file")
	algorithmName := flagSet.String("algorithm", "all", "algorithm (ch, mld, corech, or all)")
	geoJSON := flagSet.Bool("geojson", false, "print test coordinates and tile as GeoJSON")
	missing := flagSet.Bool("missing", false, "fail if any dataset is missing")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	algorithms := osrmtest.Algorithms()
	if *algorithmName != "all" {
		algorithm, err := osrmtest.ParseAlgorithm(*algorithmName)
		if err != nil {
			return err
		}
		algorithms = []osrmtest.Algorithm{algorithm}
	}

	fixtures := osrmtest.Load(osrmtest.WithLogger(logger))
	dataPaths := fixtures.DataPaths()

	switch {
	case *geoJSON:
		return writeGeoJSON(stdout, fixtures)
	case *missing:
		return checkMissing(stdout, &dataPaths, algorithms)
	}

	for _, algorithm := range algorithms {
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", algorithm, dataPaths.Path(algorithm)); err != nil {
			return err
		}
	}
	return nil
}

func writeGeoJSON(w io.Writer, fixtures *osrmtest.Fixtures) error {
	featureCollection := geojson.NewFeatureCollection()
	for i, coord := range fixtures.ThreeTestCoordinates() {
		feature := geojson.NewFeature(coord)
		feature.Properties["index"] = i
		featureCollection.Append(feature)
	}

	tile := fixtures.TestTile()
	tileFeature := geojson.NewFeature(tile.At.Bound().ToPolygon())
	tileFeature.Properties["x"] = tile.At.X
	tileFeature.Properties["y"] = tile.At.Y
	tileFeature.Properties["z"] = tile.At.Z
	tileFeature.Properties["size"] = tile.Size
	featureCollection.Append(tileFeature)

	data, err := featureCollection.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func checkMissing(w io.Writer, dataPaths *osrmtest.DataPaths, algorithms []osrmtest.Algorithm) error {
	missing, err := dataPaths.Missing(algorithms...)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for _, algorithm := range missing {
		names = append(names, algorithm.String())
		if _, err := fmt.Fprintf(w, "%s\t%s\n", algorithm, dataPaths.Path(algorithm)); err != nil {
			return err
		}
	}
	return fmt.Errorf("missing datasets: %s", strings.Join(names, ", "))
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "osrm-fixtures",
	})
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
