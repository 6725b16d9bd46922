// pkg/locate/resolver.go
package locate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maketools/resloc/pkg/layout"
)

// Environment variables recognized by the resolver
const (
	// EnvLibDir replaces the computed resource root outright.
	EnvLibDir = "RESLOC_LIBDIR"

	// EnvUninstalled, when set to any non-empty value, skips the
	// bundled-relative computation and uses source-tree paths.
	EnvUninstalled = "RESLOC_UNINSTALLED"
)

// ErrNoExecutablePath indicates the running executable's own path could
// not be determined. There is no safe fallback: resolution must fail
// rather than guess a relative path.
var ErrNoExecutablePath = errors.New("cannot determine executable path")

// Resolver computes where the tool's bundled resource directory lives,
// independent of install location. Resolution happens once per process
// at startup; a Resolver holds no mutable state.
type Resolver struct {
	pkg        string
	apiVersion string
	layout     layout.Layout
	sourceDir  string
	env        func(string) string
	execPath   func() (string, error)
}

// NewResolver creates a Resolver from the given configuration.
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}

	env := cfg.Env
	if env == nil {
		env = os.Getenv
	}
	execPath := cfg.ExecPath
	if execPath == nil {
		execPath = os.Executable
	}
	sourceDir := cfg.SourceDir
	if sourceDir == "" {
		sourceDir = "."
	}

	return &Resolver{
		pkg:        cfg.Package,
		apiVersion: cfg.APIVersion,
		layout:     layout.Get(cfg.LayoutName),
		sourceDir:  sourceDir,
		env:        env,
		execPath:   execPath,
	}
}

// rule is one branch of the override chain. It reports whether it
// applies, and if so the resolved root.
type rule struct {
	mode    Mode
	resolve func() (string, bool, error)
}

// The chain is evaluated in a fixed order, first match wins:
// libdir override > uninstalled mode > relocatable default.
func (r *Resolver) rules() []rule {
	return []rule{
		{ModeOverride, r.fromLibDir},
		{ModeUninstalled, r.fromSourceTree},
		{ModeRelocatable, r.fromExecutable},
	}
}

// Resolve computes the resource root.
func (r *Resolver) Resolve() (*Result, error) {
	for _, step := range r.rules() {
		root, ok, err := step.resolve()
		if err != nil {
			return nil, err
		}
		if ok {
			return &Result{Root: root, Mode: step.mode}, nil
		}
	}
	// The relocatable rule always applies; this is unreachable.
	return nil, fmt.Errorf("no resolution rule matched")
}

func (r *Resolver) fromLibDir() (string, bool, error) {
	dir := r.env(EnvLibDir)
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

func (r *Resolver) fromSourceTree() (string, bool, error) {
	if r.env(EnvUninstalled) == "" {
		return "", false, nil
	}
	// Development mode: resources live unversioned in the checkout.
	// SourceDir may be relative (it defaults to "."); the root is
	// still reported absolute like every other mode's.
	root, err := filepath.Abs(filepath.Join(r.sourceDir, "res"))
	if err != nil {
		return "", false, err
	}
	return root, true, nil
}

func (r *Resolver) fromExecutable() (string, bool, error) {
	dir, err := r.executableDir()
	if err != nil {
		return "", false, err
	}
	offset := r.layout.Offsets[0]
	root := filepath.Join(dir, offset, layout.VersionedDir(r.pkg, r.apiVersion))
	return root, true, nil
}

// BundledDirs returns every bundled resource directory variant for the
// search path, highest priority first: the versioned directory for each
// layout offset, then the unversioned base directories. Under the
// libdir override the literal override value is the only variant; in
// uninstalled mode the source-tree directory is.
func (r *Resolver) BundledDirs() ([]string, error) {
	res, err := r.Resolve()
	if err != nil {
		return nil, err
	}
	if res.Mode != ModeRelocatable {
		return []string{res.Root}, nil
	}

	dir, err := r.executableDir()
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, offset := range r.layout.Offsets {
		dirs = append(dirs, filepath.Join(dir, offset, layout.VersionedDir(r.pkg, r.apiVersion)))
	}
	for _, offset := range r.layout.Offsets {
		dirs = append(dirs, filepath.Join(dir, offset, r.pkg))
	}
	return dirs, nil
}

// executableDir returns the canonicalized directory containing the
// running executable. The full executable path is resolved through
// symlinks BEFORE taking the parent directory, so a bin/tool reached
// via /usr/bin/tool still lands in the real install tree.
func (r *Resolver) executableDir() (string, error) {
	exe, err := r.execPath()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoExecutablePath, err)
	}
	if exe == "" {
		return "", ErrNoExecutablePath
	}

	canon, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("canonicalizing %s: %w", exe, err)
	}
	abs, err := filepath.Abs(filepath.Dir(canon))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", canon, err)
	}
	return abs, nil
}
