// pkg/scan/scan.go
package scan

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the resource file extensions scanned when none
// are configured.
var DefaultExtensions = []string{".m4"}

// Resource represents a resource file found on the search path
type Resource struct {
	Name string // Resource name without extension (e.g. "ax_check_flex")
	Path string // Absolute path to the file
	Dir  string // Search path directory it was found in
}

// Scanner looks up resource files across a priority-ordered search
// path. Directories earlier in the path shadow later ones.
type Scanner struct {
	paths []string
	exts  []string
}

// New creates a Scanner over the given search path. A nil or empty
// extension list falls back to DefaultExtensions.
func New(paths, extensions []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		paths: paths,
		exts:  extensions,
	}
}

// Find returns the first resource matching name, scanning the search
// path in priority order. Returns nil if no directory provides it.
// Directories that do not exist or cannot be read contribute nothing;
// that is a property of the search path, not an error.
func (s *Scanner) Find(name string) *Resource {
	for _, dir := range s.paths {
		for _, ext := range s.exts {
			path := filepath.Join(dir, name+ext)
			if fileExists(path) {
				return &Resource{
					Name: name,
					Path: path,
					Dir:  dir,
				}
			}
		}
	}
	return nil
}

// All returns every resource visible on the search path. When the same
// name appears in several directories, only the highest-priority
// occurrence is returned.
func (s *Scanner) All() []*Resource {
	seen := make(map[string]bool)
	var resources []*Resource

	for _, dir := range s.paths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			name, ok := s.resourceName(entry.Name())
			if !ok || seen[name] {
				continue
			}
			seen[name] = true

			resources = append(resources, &Resource{
				Name: name,
				Path: filepath.Join(dir, entry.Name()),
				Dir:  dir,
			})
		}
	}

	return resources
}

// Names returns the names of all visible resources.
func (s *Scanner) Names() []string {
	all := s.All()
	names := make([]string, 0, len(all))
	for _, res := range all {
		names = append(names, res.Name)
	}
	return names
}

// Has checks whether a resource is visible anywhere on the search path.
func (s *Scanner) Has(name string) bool {
	return s.Find(name) != nil
}

// resourceName strips a known extension from a file name, reporting
// whether the file is a resource at all.
func (s *Scanner) resourceName(filename string) (string, bool) {
	for _, ext := range s.exts {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext), true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
