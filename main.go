package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/travoltage/assets"
	"github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/fonts"
	"github.com/automoto/travoltage/scenes"
	"github.com/automoto/travoltage/shared/scenedata"
	"github.com/automoto/travoltage/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(layout *scenedata.Layout) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTravoltageScene(layout),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadScene reads an embedded scene, or a TMX file on disk when no embedded
// scene has that path.
func loadScene(path string) (*scenedata.Layout, error) {
	layout, err := assets.LoadScene(path)
	if err == nil {
		return layout, nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, err
	}
	return scenedata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	debug := flag.Bool("debug", false, "Show body outline, force lines and hit boxes")
	noSound := flag.Bool("nosound", false, "Start with sound off")
	scenePath := flag.String("scene", config.C.ScenePath, "Scene map, embedded path or TMX file")
	flag.Parse()

	config.Debug.ShowGeometry = *debug
	config.Debug.NoSound = *noSound

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layout, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene %s: %v", *scenePath, err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags win over saved settings
	if config.Debug.NoSound {
		systems.SetSoundEnabled(false)
	}
	if config.Debug.ShowGeometry {
		systems.SetShowDebug(true)
	}

	game := NewGame(layout)
	err = ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
