// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const automkIndex = `name = "automk"
api_version = "1.16"
bundle = "automk-1.16.tar.xz"
fingerprint = "0c1z4ppjkq6p0gbrbzw3nmlqvq2pj2a7mgvmi1kpwrlhlgsvzkqn"
files = ["ax_check_flex.m4", "ax_prog_cc.m4"]
`

func writePack(t *testing.T, cacheDir, name, content string) {
	t.Helper()
	dir := filepath.Join(cacheDir, "packs", name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.toml"), []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	cache := t.TempDir()
	writePack(t, cache, "automk", automkIndex)

	entry, err := New(cache).Load("automk")
	require.NoError(t, err)
	require.Equal(t, "automk", entry.Name)
	require.Equal(t, "1.16", entry.APIVersion)
	require.Equal(t, "automk-1.16.tar.xz", entry.Bundle)
	require.Equal(t, []string{"ax_check_flex.m4", "ax_prog_cc.m4"}, entry.Files)
}

func TestResolve(t *testing.T) {
	cache := t.TempDir()
	writePack(t, cache, "automk", automkIndex)

	dir, err := New(cache).Resolve("automk")
	require.NoError(t, err)
	require.Equal(t, "automk-1.16", dir)
}

func TestLoadMissingPack(t *testing.T) {
	cache := t.TempDir()
	writePack(t, cache, "automk", automkIndex)

	_, err := New(cache).Load("nope")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound,
		"callers must be able to distinguish a missing pack with errors.Is")
	require.Contains(t, err.Error(), "pack 'nope'")
}

func TestLoadMissingIndexFile(t *testing.T) {
	cache := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cache, "packs", "broken"), 0755))

	_, err := New(cache).Load("broken")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing index.toml")
}

func TestLoadBeforeSync(t *testing.T) {
	cache := t.TempDir()

	_, err := New(cache).Load("automk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "run sync first")
}

func TestLoadInvalidToml(t *testing.T) {
	cache := t.TempDir()
	writePack(t, cache, "bad", "name = [broken")

	_, err := New(cache).Load("bad")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestList(t *testing.T) {
	cache := t.TempDir()
	writePack(t, cache, "zlib", automkIndex)
	writePack(t, cache, "automk", automkIndex)

	names, err := New(cache).List()
	require.NoError(t, err)
	require.Equal(t, []string{"automk", "zlib"}, names)
}
