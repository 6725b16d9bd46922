// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quiet bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the bundled resource root",
	Long: `Resolve the tool's bundled resource directory through the override
chain: RESLOC_LIBDIR, then RESLOC_UNINSTALLED, then the relocatable
computation relative to the running executable.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the resolved path")
}

func runResolve(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return fmt.Errorf("initializing locator: %w", err)
	}

	res, err := loc.ResourceRoot()
	if err != nil {
		return err
	}

	if quiet {
		fmt.Println(res.Root)
		return nil
	}

	fmt.Printf("Resource root: %s\n", res.Root)
	fmt.Printf("Mode: %s\n", res.Mode)
	return nil
}
