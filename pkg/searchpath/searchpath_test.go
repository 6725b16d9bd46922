// pkg/searchpath/searchpath_test.go
package searchpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testEnv(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestExtraIncludesFiltering(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	missing := filepath.Join(tmp, "missing")
	require.NoError(t, os.Mkdir(a, 0755))
	require.NoError(t, os.Mkdir(b, 0755))

	value := strings.Join([]string{a, a, missing, b}, ":")
	builder := New(&Config{
		Env: testEnv(map[string]string{EnvExtraIncludes: value}),
	})

	require.Equal(t, []string{a, b}, builder.Build(),
		"dedup keeps first occurrence, nonexistent entries are dropped, order is preserved")
}

func TestExtraIncludesUnset(t *testing.T) {
	builder := New(&Config{Env: testEnv(nil)})
	require.Empty(t, builder.Build())
}

func TestExtraIncludesEmptyValue(t *testing.T) {
	builder := New(&Config{
		Env: testEnv(map[string]string{EnvExtraIncludes: ""}),
	})
	require.Empty(t, builder.Build())
}

func TestExtraIncludesRejectsFiles(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	builder := New(&Config{
		Env: testEnv(map[string]string{EnvExtraIncludes: file}),
	})
	require.Empty(t, builder.Build())
}

func TestBuildOrdering(t *testing.T) {
	tmp := t.TempDir()
	extra := filepath.Join(tmp, "extra")
	require.NoError(t, os.Mkdir(extra, 0755))

	builder := New(&Config{
		UserIncludes: []string{"/u"},
		BundledDirs:  []string{"/bundled"},
		SystemDirs:   []string{"/sys"},
		Env:          testEnv(map[string]string{EnvExtraIncludes: extra}),
	})

	require.Equal(t, []string{"/u", "/bundled", "/sys", extra}, builder.Build())
}

func TestBuildTrustsConfiguredDirs(t *testing.T) {
	// User, bundled and system entries enter the path without
	// existence checks; only extra includes are filtered.
	builder := New(&Config{
		UserIncludes: []string{"/no/such/user/dir"},
		BundledDirs:  []string{"/no/such/bundled/dir"},
		SystemDirs:   []string{"/no/such/system/dir"},
		Env:          testEnv(nil),
	})

	require.Len(t, builder.Build(), 3)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"/a", "/b", "/c"}, SplitList("/a:/b;/c"))
	require.Empty(t, SplitList("::;"))
	require.Equal(t, []string{"/a"}, SplitList(":/a:"))
	require.Empty(t, SplitList(""))
}
