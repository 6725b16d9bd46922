// pkg/layout/layout_test.go
package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDefault(t *testing.T) {
	require.Equal(t, "res", Get("").Name)
	require.Equal(t, "res", Get("res").Name)
	require.Equal(t, []string{filepath.Join("..", "res")}, Get("").Offsets)
}

func TestGetUnknownFallsBack(t *testing.T) {
	require.Equal(t, "res", Get("does-not-exist").Name)
}

func TestGetShare(t *testing.T) {
	l := Get("share")
	require.Equal(t, "share", l.Name)
	require.Equal(t, []string{filepath.Join("..", "share")}, l.Offsets)
}

func TestGetFlat(t *testing.T) {
	l := Get("flat")
	require.Equal(t, []string{".."}, l.Offsets)
}

func TestVersionedDir(t *testing.T) {
	require.Equal(t, "automk-1.16", VersionedDir("automk", "1.16"))
}

func TestAPIVersion(t *testing.T) {
	require.Equal(t, "1.16", APIVersion("1.16.5"))
	require.Equal(t, "5.3", APIVersion("5.3.0"))
	require.Equal(t, "1.16", APIVersion("1.16"))
	require.Equal(t, "2", APIVersion("2"))
}
