// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maketools/resloc/pkg/registry"
)

var infoCmd = &cobra.Command{
	Use:   "info [pack]",
	Short: "Show information about a pack",
	Long: `Display metadata for a resource pack from the synced index. Without
an argument, list all packs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	reg := registry.New(config.CachePath)

	if len(args) == 0 {
		names, err := reg.List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	entry, err := reg.Load(args[0])
	if err != nil {
		return err
	}

	resourceDir, err := reg.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Pack: %s\n", entry.Name)
	fmt.Printf("API version: %s\n", entry.APIVersion)
	fmt.Printf("Resource dir: %s\n", resourceDir)
	if entry.Bundle != "" {
		fmt.Printf("Bundle: %s\n", entry.Bundle)
	}
	if entry.Fingerprint != "" {
		fmt.Printf("Fingerprint: %s\n", entry.Fingerprint)
	}
	if len(entry.Files) > 0 {
		fmt.Printf("Files: %s\n", strings.Join(entry.Files, ", "))
	}

	return nil
}
