// Package embedded bundles the browser UI served by the API server.
package embedded

import (
	"embed"
	"io/fs"
)

// FS embeds the UI files at build time.
//
//go:embed web
var FS embed.FS

// Web returns the UI files rooted at the web directory.
func Web() fs.FS {
	sub, err := fs.Sub(FS, "web")
	if err != nil {
		// The directory is embedded, so this cannot fail at runtime.
		panic(err)
	}
	return sub
}
