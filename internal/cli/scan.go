// internal/cli/scan.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [name]",
	Short: "Scan the search path for resources",
	Long: `Scan every directory on the search path for resource files. With a
name argument, print only the first match; directories earlier in the
path shadow later ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return fmt.Errorf("initializing locator: %w", err)
	}

	scanner, err := loc.Scanner()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		res := scanner.Find(args[0])
		if res == nil {
			return fmt.Errorf("resource '%s' not found on the search path", args[0])
		}
		fmt.Printf("Resource: %s\n", res.Name)
		fmt.Printf("Path: %s\n", res.Path)
		fmt.Printf("Directory: %s\n", res.Dir)
		return nil
	}

	resources := scanner.All()
	if len(resources) == 0 {
		fmt.Println("No resources found on the search path.")
		return nil
	}

	for _, res := range resources {
		fmt.Printf("%-30s %s\n", res.Name, res.Path)
	}
	fmt.Printf("\n%d resources\n", len(resources))
	return nil
}
