// internal/cli/unpack.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maketools/resloc/pkg/bundle"
)

var expectedFingerprint string

var unpackCmd = &cobra.Command{
	Use:   "unpack <bundle> [dest]",
	Short: "Unpack a resource bundle",
	Long: `Unpack a .tar.xz or .tar.gz resource bundle. Without a destination
the bundle lands in the cache resource directory, which is part of the
system-wide search path.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUnpack,
}

func init() {
	unpackCmd.Flags().StringVar(&expectedFingerprint, "verify", "", "expected bundle fingerprint (sha256, nix base32)")
}

func runUnpack(cmd *cobra.Command, args []string) error {
	loc, err := newLocator()
	if err != nil {
		return fmt.Errorf("initializing locator: %w", err)
	}

	dest := loc.CacheResourceDir()
	if len(args) == 2 {
		dest = args[1]
	}

	b := bundle.Open(args[0], cliLogger())

	if expectedFingerprint != "" {
		if err := b.Verify(expectedFingerprint); err != nil {
			return fmt.Errorf("verifying bundle: %w", err)
		}
	}

	if err := b.Unpack(dest); err != nil {
		return fmt.Errorf("unpacking bundle: %w", err)
	}

	fingerprint, err := b.Fingerprint()
	if err != nil {
		return fmt.Errorf("fingerprinting bundle: %w", err)
	}

	fmt.Printf("Unpacked %s -> %s\n", args[0], dest)
	fmt.Printf("Fingerprint: %s\n", fingerprint)
	return nil
}
