// Package data bundles the reference data shipped with pokedex.
package data

import (
	"embed"
	"io/fs"
)

//go:embed type_chart.json moves.json pokedex/*.json
var dataFS embed.FS

// FS returns the bundled data laid out the way dex.DefaultLoader expects
func FS() fs.FS {
	return dataFS
}
