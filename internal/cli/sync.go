// internal/cli/sync.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maketools/resloc/pkg/index"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the central pack index",
	Long:  `Clone the central resource-pack index into the local cache.`,
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	if err := index.Sync(config.CachePath); err != nil {
		return fmt.Errorf("syncing pack index: %w", err)
	}
	return nil
}
