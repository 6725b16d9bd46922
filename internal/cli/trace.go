// internal/cli/trace.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/maketools/resloc/pkg/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace [args...]",
	Short: "Invoke the trace companion tool",
	Long: `Invoke the downstream trace companion. The command defaults to
"/usr/bin/env resloc-trace" so the companion is resolved from PATH at
run time; set RESLOC_TRACE to override it. Use -- before companion
flags.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	runner := trace.New(&trace.Config{
		Logger: cliLogger(),
	})
	return runner.Run(context.Background(), args...)
}
