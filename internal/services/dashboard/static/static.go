// Package static embeds the dashboard's stylesheet, client script, and
// image assets.
package static

import (
	"embed"
	"io/fs"
)

// FS exposes stylesheet and script files for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS

//go:embed assets
var assets embed.FS

// Assets exposes image assets rooted at the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
