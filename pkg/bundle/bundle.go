// pkg/bundle/bundle.go
package bundle

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Bundle reads resource packs distributed as tar archives, compressed
// with xz or gzip. Bundles only carry data files; they are unpacked
// into a resource directory, never executed.
type Bundle struct {
	path   string
	logger *log.Logger
}

// Open creates a Bundle for the archive at path. The file is not read
// until List or Unpack is called.
func Open(path string, logger *log.Logger) *Bundle {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Bundle{
		path:   path,
		logger: logger,
	}
}

// Path returns the bundle's file path.
func (b *Bundle) Path() string {
	return b.path
}

// List returns the names of all regular files in the bundle without
// extracting anything.
func (b *Bundle) List() ([]string, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	tr, err := b.tarReader(f)
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeReg {
			names = append(names, strings.TrimPrefix(header.Name, "./"))
		}
	}
	return names, nil
}

// Unpack extracts the bundle into destDir. Entries escaping the
// destination are skipped.
func (b *Bundle) Unpack(destDir string) error {
	b.logger.Printf("Unpacking bundle: %s -> %s", b.path, destDir)

	f, err := os.Open(b.path)
	if err != nil {
		return fmt.Errorf("opening bundle: %w", err)
	}
	defer f.Close()

	tr, err := b.tarReader(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	fileCount := 0
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		cleanPath := strings.TrimPrefix(header.Name, "./")
		if cleanPath == "" || cleanPath == "." {
			continue
		}

		targetPath := filepath.Join(destDir, cleanPath)
		if !strings.HasPrefix(targetPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
			b.logger.Printf("  Skipping entry escaping destination: %s", header.Name)
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}

			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return fmt.Errorf("creating file %s: %w", targetPath, err)
			}

			written, err := io.Copy(outFile, tr)
			outFile.Close()
			if err != nil {
				return fmt.Errorf("writing file %s: %w", targetPath, err)
			}
			if written != header.Size {
				return fmt.Errorf("file size mismatch for %s: expected %d, got %d", targetPath, header.Size, written)
			}

			fileCount++
			b.logger.Printf("  %s (%d bytes)", cleanPath, header.Size)

		default:
			b.logger.Printf("  Skipping unsupported entry type %v for %s", header.Typeflag, cleanPath)
		}
	}

	b.logger.Printf("Unpacked %d files", fileCount)
	return nil
}

// tarReader wraps the archive in the right decompressor based on the
// file name, mirroring the compression formats packs are published in.
func (b *Bundle) tarReader(r io.Reader) (*tar.Reader, error) {
	switch {
	case strings.HasSuffix(b.path, ".tar.xz"):
		xzReader, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return tar.NewReader(xzReader), nil

	case strings.HasSuffix(b.path, ".tar.gz"):
		gzReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return tar.NewReader(gzReader), nil

	case strings.HasSuffix(b.path, ".tar"):
		return tar.NewReader(r), nil

	default:
		return nil, fmt.Errorf("unsupported bundle format: %s", filepath.Base(b.path))
	}
}
