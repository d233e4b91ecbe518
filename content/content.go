// Package content embeds the built-in game world, so the binary runs
// without any files on disk. An external content directory can still be
// pointed at the loader directly.
package content

import (
	"embed"
	"io/fs"
)

//go:embed *.lua
var files embed.FS

// FS returns the embedded game content as a plain fs.FS.
func FS() fs.FS { return files }
