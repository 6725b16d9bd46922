// pkg/locate/types.go
package locate

// Mode identifies which branch of the override chain produced a
// resource root.
type Mode int

const (
	// ModeOverride means RESLOC_LIBDIR replaced the computed root.
	ModeOverride Mode = iota
	// ModeUninstalled means RESLOC_UNINSTALLED redirected resolution
	// to the source checkout.
	ModeUninstalled
	// ModeRelocatable means the root was computed relative to the
	// running executable.
	ModeRelocatable
)

func (m Mode) String() string {
	switch m {
	case ModeOverride:
		return "override"
	case ModeUninstalled:
		return "uninstalled"
	case ModeRelocatable:
		return "relocatable"
	default:
		return "unknown"
	}
}

// Result is the outcome of resource root resolution.
type Result struct {
	Root string // Absolute path of the versioned resource directory
	Mode Mode   // Which branch produced it
}

// Config configures a Resolver
type Config struct {
	Package    string // Package name (e.g. "automk")
	APIVersion string // major.minor version naming the resource dir
	LayoutName string // Packaging flavor ("res", "share", "flat")
	SourceDir  string // Source checkout root for uninstalled mode (default ".")

	// Env reads an environment variable. Defaults to os.Getenv.
	// Injected so tests never touch the process environment.
	Env func(string) string

	// ExecPath reports the running executable's absolute path.
	// Defaults to os.Executable. Injected so tests can supply
	// synthetic and symlinked paths.
	ExecPath func() (string, error)
}
