// pkg/index/sync.go
package index

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const (
	RepoURL    = "https://github.com/maketools/resloc-index"
	RepoBranch = "main"
)

// Sync clones the central resource-pack index and copies the packs/
// tree into the cache. The synced directory then joins the system-wide
// portion of the search path.
func Sync(cacheDir string) error {
	tempDir, err := os.MkdirTemp("", "resloc-clone-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	fmt.Printf("Updating pack index from %s...\n", RepoURL)

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           RepoURL,
		ReferenceName: plumbing.NewBranchReferenceName(RepoBranch),
		SingleBranch:  true,
		Depth:         1,
		Progress:      os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}

	if err := copyDir(
		filepath.Join(tempDir, "packs"),
		filepath.Join(cacheDir, "packs"),
	); err != nil {
		return fmt.Errorf("copying packs: %w", err)
	}

	fmt.Println("Pack index updated successfully.")
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyDir replicates the src tree under dst. Pack index files are
// small text, so a plain recursive copy is enough here.
func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			err = copyDir(srcPath, dstPath)
		} else {
			err = copyFile(srcPath, dstPath)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
