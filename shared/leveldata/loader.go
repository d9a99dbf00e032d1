package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/ghostclimb/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX maps.
const (
	GroupPlatforms   = "Platforms"
	GroupLadders     = "Ladders"
	GroupPlayerSpawn = "PlayerSpawn"
)

// LoadTMX parses a Tiled map into a Layout. Platforms and ladders are
// ordered by their "order" property, then by document order. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			layout.Platforms = orderedRects(og.Objects)
		case GroupLadders:
			layout.Ladders = orderedRects(og.Objects)
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.Spawn = SpawnPoint{X: o.X, Y: o.Y}
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return Layout{}, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return layout, nil
}

func orderedRects(objects []*tiled.Object) []gamemath.Rect {
	type ordered struct {
		order int
		rect  gamemath.Rect
	}
	items := make([]ordered, 0, len(objects))
	for _, o := range objects {
		items = append(items, ordered{
			order: o.Properties.GetInt("order"),
			rect:  gamemath.NewRect(o.X, o.Y, o.Width, o.Height),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].order < items[j].order
	})

	rects := make([]gamemath.Rect, len(items))
	for i, it := range items {
		rects[i] = it.rect
	}
	return rects
}

// LoadAllLayouts discovers all .tmx files in dir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, dir string) (map[string]Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		layout, err := LoadTMX(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
