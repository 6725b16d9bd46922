// pkg/locate/doc.go
package locate

/*
Package locate resolves where a relocatably installed tool's bundled
resource directory lives, relative to the running executable, so the
installed tree can be moved or repackaged without rebuilding.

Basic Usage:

    import "github.com/maketools/resloc/pkg/locate"

    // Create resolver
    r := locate.NewResolver(&locate.Config{
        Package:    "automk",
        APIVersion: "1.16",
    })

    // Resolve the resource root
    res, err := r.Resolve()
    if err != nil {
        log.Fatal(err)
    }
    fmt.Println(res.Root) // /opt/automk/res/automk-1.16

Override Chain:

Resolution walks a fixed priority chain and stops at the first branch
that applies:

  1. RESLOC_LIBDIR replaces the computed root with its literal value.
  2. RESLOC_UNINSTALLED switches to source-tree paths for development
     builds that have never been installed.
  3. Otherwise the root is computed from the executable's own location:
     the executable path is canonicalized through symlinks, then the
     layout offset (../res by default) and the versioned directory name
     are applied.

The executable path and environment are injected capabilities, so
embedding tools can test symlink and override scenarios without
touching the real process environment.
*/
