package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/travoltage/shared/scenedata"
)

var (
	//go:embed all:scenes
	sceneFS embed.FS
)

// SceneFS exposes the embedded scenes for tools that share the loader.
func SceneFS() fs.FS {
	return sceneFS
}

// LoadScene parses an embedded scene map, e.g. "scenes/travoltage.tmx".
func LoadScene(path string) (*scenedata.Layout, error) {
	layout, err := scenedata.Load(sceneFS, path)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return layout, nil
}

// MustLoadScene is LoadScene for scenes compiled into the binary; a failure
// means the embedded data is corrupt.
func MustLoadScene(path string) *scenedata.Layout {
	layout, err := LoadScene(path)
	if err != nil {
		panic(err)
	}
	return layout
}

// SceneNames lists the embedded scenes, sorted.
func SceneNames() ([]string, error) {
	_, names, err := scenedata.LoadAll(sceneFS, "scenes")
	return names, err
}
