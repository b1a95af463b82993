package scenedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrMissingObject is wrapped when a required object is absent from the map.
var ErrMissingObject = errors.New("scene object missing")

// Load parses a TMX scene. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (sweep tool).
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  sceneMap.Width * sceneMap.TileWidth,
		MapHeight: sceneMap.Height * sceneMap.TileHeight,
	}

	var haveArm, haveLeg, haveKnob, haveSpawn bool
	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case "Appendages":
			for _, o := range og.Objects {
				limb := Limb{
					Pivot:        dmath.Vec2{X: o.X, Y: o.Y},
					Length:       o.Properties.GetFloat("length"),
					AngleOffset:  o.Properties.GetFloat("angleOffset"),
					MinAngle:     o.Properties.GetFloat("minAngle"),
					MaxAngle:     o.Properties.GetFloat("maxAngle"),
					InitialAngle: o.Properties.GetFloat("initialAngle"),
				}
				switch o.Name {
				case "arm":
					layout.Arm, haveArm = limb, true
				case "leg":
					layout.Leg, haveLeg = limb, true
				}
			}
		case "Doorknob":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.Doorknob = dmath.Vec2{X: o.X, Y: o.Y}
				haveKnob = true
			}
		case "ElectronSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				layout.ElectronSpawn = Box{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				haveSpawn = true
			}
		case "Body":
			for _, o := range og.Objects {
				if len(o.Polygons) == 0 || o.Polygons[0].Points == nil {
					continue
				}
				layout.Body = offsetPoints(o.X, o.Y, *o.Polygons[0].Points)
				break
			}
		case "ForceLines":
			// Object IDs keep the authored order stable.
			objects := append([]*tiled.Object(nil), og.Objects...)
			sort.Slice(objects, func(i, j int) bool { return objects[i].ID < objects[j].ID })
			for _, o := range objects {
				for _, line := range o.PolyLines {
					if line.Points == nil || len(*line.Points) < 2 {
						continue
					}
					layout.ForceLines = append(layout.ForceLines, offsetPoints(o.X, o.Y, *line.Points))
				}
			}
		}
	}

	var missing []string
	if !haveArm {
		missing = append(missing, "arm")
	}
	if !haveLeg {
		missing = append(missing, "leg")
	}
	if !haveKnob {
		missing = append(missing, "doorknob")
	}
	if !haveSpawn {
		missing = append(missing, "electron spawn")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", tmxPath, ErrMissingObject, strings.Join(missing, ", "))
	}

	return layout, nil
}

// offsetPoints converts object-relative points into scene coordinates.
func offsetPoints(x, y float64, points tiled.Points) []dmath.Vec2 {
	out := make([]dmath.Vec2, len(points))
	for i, p := range points {
		out[i] = dmath.Vec2{X: x + p.X, Y: y + p.Y}
	}
	return out
}

// LoadAll discovers all .tmx files in dir within fsys and loads each one,
// returning layouts keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		layouts[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return layouts, names, nil
}
