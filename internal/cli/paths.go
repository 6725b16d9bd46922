// internal/cli/paths.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the resource search path",
	Long: `Print the full resource search path in priority order: user
includes, bundled resource directories, system directories, then
directories from RESLOC_EXTRA_INCLUDES. First match wins.`,
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return fmt.Errorf("initializing locator: %w", err)
	}

	paths, err := loc.SearchPath()
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}
