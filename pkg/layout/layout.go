// pkg/layout/layout.go
package layout

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Layout describes where a packaging flavor places the resource tree
// relative to the directory holding the executable. Offsets are RELATIVE
// paths applied after the executable directory has been canonicalized.
type Layout struct {
	Name    string
	Offsets []string // candidate offsets from the executable's directory, priority order
}

// Get returns the layout for the given packaging flavor.
// An empty or unknown name falls back to the default "res" layout.
func Get(name string) Layout {
	switch name {
	case "", "res":
		return resLayout()
	case "share":
		return shareLayout()
	case "flat":
		return flatLayout()
	default:
		return resLayout()
	}
}

// Default relocatable layout: executable in bin/, resources in a
// sibling res/ directory (bin/tool -> res/<pkg>-<ver>).
func resLayout() Layout {
	return Layout{
		Name: "res",
		Offsets: []string{
			filepath.Join("..", "res"),
		},
	}
}

// FHS-style installs place resources under a sibling share/ directory
// (bin/tool -> share/<pkg>-<ver>), with share/ itself as a fallback for
// unversioned data.
func shareLayout() Layout {
	return Layout{
		Name: "share",
		Offsets: []string{
			filepath.Join("..", "share"),
		},
	}
}

// Brew/nix-style prefixes keep a flat structure: the versioned resource
// directory sits directly next to bin/.
func flatLayout() Layout {
	return Layout{
		Name:    "flat",
		Offsets: []string{".."},
	}
}

// Known returns the names of all supported layouts.
func Known() []string {
	return []string{"res", "share", "flat"}
}

// VersionedDir returns the versioned resource subdirectory name for a
// package, e.g. VersionedDir("automk", "1.16") -> "automk-1.16".
func VersionedDir(pkg, apiVersion string) string {
	return fmt.Sprintf("%s-%s", pkg, apiVersion)
}

// APIVersion reduces a full version to the major.minor pair that names
// the resource directory, e.g. "1.16.5" -> "1.16". Versions with fewer
// than two components are returned unchanged.
func APIVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}
