// pkg/bundle/bundle_test.go
package bundle

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func writeTar(t *testing.T, w io.Writer, files map[string]string) {
	t.Helper()
	tw := tar.NewWriter(w)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0644,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
}

func writeGzBundle(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	writeTar(t, gw, files)
	require.NoError(t, gw.Close())
}

func writeXzBundle(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	xw, err := xz.NewWriter(f)
	require.NoError(t, err)
	writeTar(t, xw, files)
	require.NoError(t, xw.Close())
}

func TestListGzip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.gz")
	writeGzBundle(t, path, map[string]string{
		"foo.m4": "# foo\n",
	})

	names, err := Open(path, nil).List()
	require.NoError(t, err)
	require.Equal(t, []string{"foo.m4"}, names)
}

func TestUnpackGzip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.gz")
	writeGzBundle(t, path, map[string]string{
		"foo.m4":        "# foo\n",
		"sub/nested.m4": "# nested\n",
	})

	dest := filepath.Join(tmp, "out")
	require.NoError(t, Open(path, nil).Unpack(dest))

	data, err := os.ReadFile(filepath.Join(dest, "foo.m4"))
	require.NoError(t, err)
	require.Equal(t, "# foo\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "sub", "nested.m4"))
	require.NoError(t, err)
	require.Equal(t, "# nested\n", string(data))
}

func TestUnpackXz(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.xz")
	writeXzBundle(t, path, map[string]string{
		"foo.m4": "# foo\n",
	})

	dest := filepath.Join(tmp, "out")
	require.NoError(t, Open(path, nil).Unpack(dest))

	_, err := os.Stat(filepath.Join(dest, "foo.m4"))
	require.NoError(t, err)
}

func TestUnpackSkipsEscapingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.gz")
	writeGzBundle(t, path, map[string]string{
		"../evil.m4": "# evil\n",
		"ok.m4":      "# ok\n",
	})

	dest := filepath.Join(tmp, "out")
	require.NoError(t, Open(path, nil).Unpack(dest))

	_, err := os.Stat(filepath.Join(dest, "ok.m4"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmp, "evil.m4"))
	require.True(t, os.IsNotExist(err), "entries escaping the destination must be skipped")
}

func TestUnsupportedFormat(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a bundle"), 0644))

	_, err := Open(path, nil).List()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported bundle format")
}

func TestFingerprint(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.gz")
	writeGzBundle(t, path, map[string]string{"foo.m4": "# foo\n"})

	b := Open(path, nil)
	first, err := b.Fingerprint()
	require.NoError(t, err)
	require.Len(t, first, 52, "sha256 in nix base32 is 52 characters")

	second, err := b.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestVerify(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pack.tar.gz")
	writeGzBundle(t, path, map[string]string{"foo.m4": "# foo\n"})

	b := Open(path, nil)
	fingerprint, err := b.Fingerprint()
	require.NoError(t, err)

	require.NoError(t, b.Verify(fingerprint))

	err = b.Verify("0000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fingerprint mismatch")
}
