// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/maketools/resloc/pkg/layout"
)

// ErrNotFound indicates the requested pack is not in the cached index.
var ErrNotFound = errors.New("pack not found")

// Entry represents a single packs/<name>/index.toml file from the
// synced central index.
type Entry struct {
	Name        string   `toml:"name"`
	APIVersion  string   `toml:"api_version"`
	Bundle      string   `toml:"bundle"`      // bundle file name, e.g. "automk-1.16.tar.xz"
	Fingerprint string   `toml:"fingerprint"` // sha256 of the bundle, nix base32
	Files       []string `toml:"files"`       // resource files the pack provides
}

// Registry provides lookup into the cached packs/ folder
type Registry struct {
	packsDir string
}

// New creates a Registry pointed at the cached packs directory
func New(cacheDir string) *Registry {
	return &Registry{
		packsDir: filepath.Join(cacheDir, "packs"),
	}
}

// Resolve takes a pack name and returns the versioned resource
// directory it unpacks into, e.g. Resolve("automk") -> "automk-1.16".
func (r *Registry) Resolve(name string) (string, error) {
	entry, err := r.Load(name)
	if err != nil {
		return "", err
	}
	return layout.VersionedDir(entry.Name, entry.APIVersion), nil
}

// Load reads and parses packs/<name>/index.toml.
// This is the primary method for retrieving pack metadata.
func (r *Registry) Load(name string) (*Entry, error) {
	if _, err := os.Stat(r.packsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("registry: packs not found, run sync first")
	}

	path := filepath.Join(r.packsDir, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		// Check if the directory exists, to give a better error message.
		dirPath := filepath.Dir(path)
		if _, statErr := os.Stat(dirPath); statErr == nil {
			return nil, fmt.Errorf("registry: found pack '%s' directory, but missing index.toml", name)
		}
		return nil, fmt.Errorf("registry: pack '%s': %w", name, ErrNotFound)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}

	return &entry, nil
}

// List returns the names of all packs in the cached index, sorted.
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("registry: packs not found, run sync first")
		}
		return nil, fmt.Errorf("registry: reading packs: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
