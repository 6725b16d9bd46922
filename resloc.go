// resloc.go
package resloc

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/maketools/resloc/pkg/core"
	"github.com/maketools/resloc/pkg/locate"
	"github.com/maketools/resloc/pkg/registry"
	"github.com/maketools/resloc/pkg/scan"
	"github.com/maketools/resloc/pkg/searchpath"
	"github.com/maketools/resloc/pkg/trace"
)

// Re-export common types for convenience
type (
	Config   = core.Config
	Result   = locate.Result
	Mode     = locate.Mode
	Resource = scan.Resource
	// RegistryEntry is the metadata for a pack from the central index.
	// Re-exported so embedding tools can access it directly.
	RegistryEntry = registry.Entry
)

// Re-export resolution modes
const (
	ModeOverride    = locate.ModeOverride
	ModeUninstalled = locate.ModeUninstalled
	ModeRelocatable = locate.ModeRelocatable
)

// Environment variables recognized across the library
const (
	EnvLibDir        = locate.EnvLibDir
	EnvUninstalled   = locate.EnvUninstalled
	EnvExtraIncludes = searchpath.EnvExtraIncludes
	EnvTrace         = trace.EnvTrace
	EnvCacheDir      = core.EnvCacheDir
)

// ErrNoExecutablePath is returned when the running executable's path
// cannot be determined. This is fatal: resolution never falls back to
// a guessed relative path.
var ErrNoExecutablePath = locate.ErrNoExecutablePath

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Locator ties resolution, search path construction and scanning
// together for a configured tool. It is built once at startup; the
// search path it produces is immutable afterward.
type Locator struct {
	config   *core.Config
	resolver *locate.Resolver
	logger   *log.Logger
}

// NewLocator creates a Locator from the given configuration
func NewLocator(config *core.Config) (*Locator, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	// Ensure CachePath is set
	if config.CachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			config.CachePath = filepath.Join(os.TempDir(), "resloc")
		} else {
			config.CachePath = filepath.Join(home, ".cache", "resloc")
		}
	}

	logger := log.New(io.Discard, "", 0)
	if config.Debug {
		logger = log.New(os.Stdout, "[RESLOC] ", log.LstdFlags)
	}

	resolver := locate.NewResolver(&locate.Config{
		Package:    config.Package,
		APIVersion: config.APIVersion,
		LayoutName: config.Layout,
		SourceDir:  config.SourceDir,
	})

	return &Locator{
		config:   config,
		resolver: resolver,
		logger:   logger,
	}, nil
}

// ResourceRoot resolves the bundled resource directory through the
// override chain (libdir override > uninstalled mode > relocatable).
func (l *Locator) ResourceRoot() (*Result, error) {
	res, err := l.resolver.Resolve()
	if err != nil {
		return nil, &Error{Op: "resolving resource root", Err: err}
	}
	l.logger.Printf("Resource root: %s (%s)", res.Root, res.Mode)
	return res, nil
}

// SearchPath builds the full priority-ordered resource search path:
// user includes, bundled directories, system directories (including
// the cache of unpacked bundles), then filtered extra includes.
func (l *Locator) SearchPath() ([]string, error) {
	bundled, err := l.resolver.BundledDirs()
	if err != nil {
		return nil, &Error{Op: "building search path", Err: err}
	}

	system := append([]string{}, l.config.SystemDirs...)
	system = append(system, l.CacheResourceDir())

	builder := searchpath.New(&searchpath.Config{
		UserIncludes: l.config.UserIncludes,
		BundledDirs:  bundled,
		SystemDirs:   system,
	})
	paths := builder.Build()
	l.logger.Printf("Search path: %v", paths)
	return paths, nil
}

// Scanner returns a Scanner over the built search path.
func (l *Locator) Scanner() (*scan.Scanner, error) {
	paths, err := l.SearchPath()
	if err != nil {
		return nil, err
	}
	return scan.New(paths, l.config.Extensions), nil
}

// Find returns the first resource matching name on the search path.
func (l *Locator) Find(name string) (*Resource, error) {
	scanner, err := l.Scanner()
	if err != nil {
		return nil, err
	}
	res := scanner.Find(name)
	if res == nil {
		return nil, &Error{Op: "finding resource", Name: name, Err: ErrResourceNotFound}
	}
	return res, nil
}

// Registry returns the pack registry backed by the synced cache.
func (l *Locator) Registry() *registry.Registry {
	return registry.New(l.config.CachePath)
}

// CacheResourceDir is where unpacked pack bundles land. It joins the
// system-wide portion of the search path.
func (l *Locator) CacheResourceDir() string {
	return filepath.Join(l.config.CachePath, "res")
}
