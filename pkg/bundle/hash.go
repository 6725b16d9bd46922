// pkg/bundle/hash.go
package bundle

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"zombiezen.com/go/nix/nixbase32"
)

// Fingerprint returns the bundle's sha256 digest in nix base32, the
// compact form pack registries record for integrity checks.
func (b *Bundle) Fingerprint() (string, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return "", fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing bundle: %w", err)
	}

	return nixbase32.EncodeToString(h.Sum(nil)), nil
}

// Verify checks the bundle against an expected fingerprint.
func (b *Bundle) Verify(expected string) error {
	actual, err := b.Fingerprint()
	if err != nil {
		return err
	}
	if actual != expected {
		return fmt.Errorf("fingerprint mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}
