package assets

import (
	"embed"
	"path"

	"github.com/automoto/ghostclimb/shared/leveldata"
)

//go:embed levels/*.tmx
var levelFS embed.FS

const levelsDir = "levels"

// LoadLayout loads an embedded Tiled layout by name (file stem).
func LoadLayout(name string) (leveldata.Layout, error) {
	return leveldata.LoadTMX(levelFS, path.Join(levelsDir, name+".tmx"))
}

// LayoutNames lists the embedded layouts.
func LayoutNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLayouts(levelFS, levelsDir)
	return names, err
}
