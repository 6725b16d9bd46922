// pkg/trace/trace.go
package trace

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
)

// EnvTrace overrides the command used to invoke the trace companion.
// Its value is split on whitespace into an argv.
const EnvTrace = "RESLOC_TRACE"

// DefaultCompanion is the companion tool invoked for trace requests
// when no override is set.
const DefaultCompanion = "resloc-trace"

// Config configures a Runner
type Config struct {
	Companion string              // Companion tool name (default "resloc-trace")
	Env       func(string) string // Defaults to os.Getenv
	Logger    *log.Logger
}

// Runner invokes the downstream trace companion. The default command
// goes through /usr/bin/env so the companion is resolved from PATH at
// run time, never from an absolute path baked in at build time.
// Whether the companion actually exists is deliberately not checked
// here; a missing tool surfaces when the command runs.
type Runner struct {
	companion string
	env       func(string) string
	logger    *log.Logger
}

// New creates a Runner from the given configuration.
func New(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	companion := cfg.Companion
	if companion == "" {
		companion = DefaultCompanion
	}
	env := cfg.Env
	if env == nil {
		env = os.Getenv
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Runner{
		companion: companion,
		env:       env,
		logger:    logger,
	}
}

// Command returns the argv used to invoke the companion, before any
// trace arguments are appended. An override that splits to an empty
// argv (unset or whitespace-only) falls through to the default.
func (r *Runner) Command() []string {
	if argv := strings.Fields(r.env(EnvTrace)); len(argv) > 0 {
		return argv
	}
	return []string{"/usr/bin/env", r.companion}
}

// Run invokes the companion with the given arguments, wiring the
// child's output through to the caller's stdio.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	argv := append(r.Command(), args...)
	r.logger.Printf("Running trace companion: %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}
