package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into level content. It takes an fs.FS so callers
// can pass an embed.FS or os.DirFS. All level geometry and placements are
// authored as object groups; there are no tile layers.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				switch {
				case o.Properties.GetBool("floating"):
					level.FloatingPlatforms = append(level.FloatingPlatforms, r)
				case o.Properties.GetBool("platform"):
					level.Platforms = append(level.Platforms, r)
				default:
					level.Walls = append(level.Walls, r)
				}
			}

		case "deadzones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}

		case "spawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = Point{X: o.X, Y: o.Y}
			}

		case "enemies":
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = "wolf"
				}
				level.Enemies = append(level.Enemies, Spawn{X: o.X, Y: o.Y, Kind: kind})
			}

		case "coins":
			for _, o := range og.Objects {
				level.Coins = append(level.Coins, Point{X: o.X, Y: o.Y})
			}

		case "camera-zones":
			for _, o := range og.Objects {
				zoom := o.Properties.GetFloat("zoom")
				if zoom == 0 {
					zoom = 1.0
				}
				level.Zones = append(level.Zones, ZoneDef{
					Name:     o.Name,
					X:        o.X,
					Y:        o.Y,
					W:        o.Width,
					H:        o.Height,
					Zoom:     zoom,
					Priority: o.Properties.GetInt("priority"),
					OneShot:  o.Properties.GetBool("oneshot"),
				})
			}
		}
	}

	return level, nil
}
