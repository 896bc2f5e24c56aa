package osrmtest

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// DataPathEnvVar is the environment variable that overrides the data
// directory.
const DataPathEnvVar = "OSRM_DATA_PATH"

// DataPaths are the absolute paths of the test dataset for each algorithm.
// The files are not required to exist.
type DataPaths struct {
	BaseDir    string // Directory containing one subdirectory per algorithm.
	Overridden bool   // Whether BaseDir came from DataPathEnvVar.
	CH         string
	MLD        string
	CoreCH     string
}

// A LookupEnvFunc returns the value of an environment variable and whether it
// is present.
type LookupEnvFunc func(key string) (string, bool)

type options struct {
	lookupEnv      LookupEnvFunc
	logger         *log.Logger
	defaultDataDir string
	// Set when defaultDataDir was derived from a source path that is not
	// absolute, as in binaries built with -trimpath.
	relativeSourceDir bool
}

// An Option sets an option when loading fixtures.
type Option func(*options)

// WithLookupEnv sets the function used to read the environment. The default
// is os.LookupEnv.
func WithLookupEnv(lookupEnv LookupEnvFunc) Option {
	return func(o *options) {
		o.lookupEnv = lookupEnv
	}
}

// WithEnv reads the environment from env instead of the process environment.
func WithEnv(env map[string]string) Option {
	return WithLookupEnv(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	})
}

// WithLogger sets the logger that reports an overridden data directory. A nil
// logger disables the report.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDefaultDataDir sets the data directory used when DataPathEnvVar is not
// set. The default is ../data relative to this package's source directory.
// Binaries built with -trimpath do not know their source directory, so the
// default then resolves against the working directory and a warning is logged;
// such binaries should set the data directory explicitly.
func WithDefaultDataDir(dir string) Option {
	return func(o *options) {
		o.defaultDataDir = dir
		o.relativeSourceDir = false
	}
}

func newOptions(opts []Option) *options {
	dir := sourceDir()
	o := &options{
		lookupEnv:         os.LookupEnv,
		logger:            log.Default(),
		defaultDataDir:    filepath.Join(dir, "..", "data"),
		relativeSourceDir: !filepath.IsAbs(dir),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadDataPaths returns the dataset paths. If DataPathEnvVar is present in the
// environment, even with an empty value, it is resolved against the working
// directory and used as the base directory, and the resolved path is logged.
// Otherwise the default data directory is used. Relative directories resolve
// against the working directory, or against this package's source directory if
// the working directory has been removed.
func LoadDataPaths(opts ...Option) *DataPaths {
	return loadDataPaths(newOptions(opts))
}

func loadDataPaths(o *options) *DataPaths {
	p := &DataPaths{}
	if dir, ok := o.lookupEnv(DataPathEnvVar); ok {
		p.BaseDir = absPath(dir)
		p.Overridden = true
	} else {
		p.BaseDir = absPath(o.defaultDataDir)
		if o.relativeSourceDir && o.logger != nil {
			o.logger.Warn("Default data path resolved against working directory", "base", p.BaseDir)
		}
	}
	p.CH = p.join(CH)
	p.MLD = p.join(MLD)
	p.CoreCH = p.join(CoreCH)

	if p.Overridden && o.logger != nil {
		o.logger.Info("Setting custom data path", "path", p.CH, "base", p.BaseDir)
	}
	return p
}

// Path returns the path of algorithm's dataset.
func (p *DataPaths) Path(algorithm Algorithm) string {
	switch algorithm {
	case CH:
		return p.CH
	case MLD:
		return p.MLD
	case CoreCH:
		return p.CoreCH
	default:
		return p.join(algorithm)
	}
}

func (p *DataPaths) join(algorithm Algorithm) string {
	return filepath.Join(p.BaseDir, filepath.FromSlash(algorithm.RelPath()))
}

var getwd = os.Getwd

// absPath returns the absolute form of path. The working directory is only
// unavailable if it has been removed, in which case relative paths resolve
// against the source directory.
func absPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	wd, err := getwd()
	if err != nil || !filepath.IsAbs(wd) {
		wd = sourceDir()
	}
	return filepath.Join(wd, path)
}

// sourceDir returns the directory containing this file.
func sourceDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filename)
}
