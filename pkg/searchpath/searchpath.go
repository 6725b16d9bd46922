// pkg/searchpath/searchpath.go
package searchpath

import (
	"io/fs"
	"os"
	"strings"
)

// EnvExtraIncludes holds additional search directories, delimited by
// ':' or ';'. Entries are appended to the search path with lowest
// priority after dedup and existence filtering.
const EnvExtraIncludes = "RESLOC_EXTRA_INCLUDES"

// Config configures a Builder. The three directory groups are trusted
// as-is: they enter the search path without existence checks. Only the
// extra-includes environment variable is filtered.
type Config struct {
	UserIncludes []string // Highest priority, user-supplied
	BundledDirs  []string // The tool's own resource directories
	SystemDirs   []string // System-wide resource directories

	// Env reads an environment variable. Defaults to os.Getenv.
	Env func(string) string

	// Stat checks a path. Defaults to os.Stat. Injected so extra
	// include filtering is testable without a real filesystem layout.
	Stat func(string) (fs.FileInfo, error)
}

// Builder assembles the priority-ordered resource search path. The
// result of Build is computed fresh each call and safe to treat as
// immutable; a Builder itself is never mutated after construction.
type Builder struct {
	userIncludes []string
	bundledDirs  []string
	systemDirs   []string
	env          func(string) string
	stat         func(string) (fs.FileInfo, error)
}

// New creates a Builder from the given configuration.
func New(cfg *Config) *Builder {
	if cfg == nil {
		cfg = &Config{}
	}

	env := cfg.Env
	if env == nil {
		env = os.Getenv
	}
	stat := cfg.Stat
	if stat == nil {
		stat = os.Stat
	}

	return &Builder{
		userIncludes: cfg.UserIncludes,
		bundledDirs:  cfg.BundledDirs,
		systemDirs:   cfg.SystemDirs,
		env:          env,
		stat:         stat,
	}
}

// Build returns the search path in priority order: user includes,
// bundled resource directories, system directories, then filtered
// extra includes. First match wins for consumers scanning the list.
func (b *Builder) Build() []string {
	var paths []string
	paths = append(paths, b.userIncludes...)
	paths = append(paths, b.bundledDirs...)
	paths = append(paths, b.systemDirs...)
	paths = append(paths, b.extraIncludes()...)
	return paths
}

// extraIncludes parses the extra-includes environment variable.
// Duplicates keep their first occurrence; entries that are not
// existing directories are silently dropped. That filtering is the
// intended policy for externally injected paths, not error recovery.
func (b *Builder) extraIncludes() []string {
	value := b.env(EnvExtraIncludes)
	if value == "" {
		return nil
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, entry := range SplitList(value) {
		if seen[entry] {
			continue
		}
		seen[entry] = true

		info, err := b.stat(entry)
		if err != nil || !info.IsDir() {
			continue
		}
		dirs = append(dirs, entry)
	}
	return dirs
}

// SplitList splits a ':' or ';' delimited path list, dropping empty
// entries. Both delimiters are accepted on every platform so lists can
// be written portably.
func SplitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ':' || r == ';'
	})
}
