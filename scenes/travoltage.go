package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/scenedata"
	"github.com/automoto/travoltage/sim"
	"github.com/automoto/travoltage/systems"
	"github.com/automoto/travoltage/systems/factory"
	"github.com/automoto/travoltage/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TravoltageScene is the single interactive scene: drag the leg across the
// carpet to build charge, then reach for the doorknob.
type TravoltageScene struct {
	ecs      *ecs.ECS
	layout   *scenedata.Layout
	controls *ui.ControlsUI
	once     sync.Once
	err      error
}

func NewTravoltageScene(layout *scenedata.Layout) *TravoltageScene {
	return &TravoltageScene{layout: layout}
}

// Update advances the scene. It returns the configuration error, if any, so
// the game loop can stop.
func (s *TravoltageScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()
	return nil
}

func (s *TravoltageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	if s.ecs == nil || s.err != nil {
		screen.Fill(color.Black)
		return
	}
	screen.Fill(cfg.HUD.BackgroundColor)
	s.ecs.Draw(screen)
}

func (s *TravoltageScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so queued sounds play with minimal delay)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(s.updateControls)
	ecs.AddSystem(systems.UpdateSettings)

	// Model input, then the fixed-step ticks, then the views react
	ecs.AddSystem(systems.UpdateAppendages)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.ProcessEvents)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateCarriers)
	ecs.AddSystem(systems.UpdateSpark)
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawCarriers)
	ecs.AddRenderer(cfg.Default, systems.DrawAppendages)
	ecs.AddRenderer(cfg.Default, systems.DrawSpark)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, s.drawControls)

	s.ecs = ecs

	factory.CreateSpace(s.ecs, s.layout.MapWidth, s.layout.MapHeight, 16, 16)

	simEntry, err := factory.CreateSimulation(s.ecs, s.layout, cfg.Sim, ebiten.TPS())
	if err != nil {
		s.err = err
		return
	}
	sd := components.Simulation.Get(simEntry)
	sd.Handles = systems.BridgeModel(s.ecs.World, sd.Model)
	systems.SubscribeViews(s.ecs)

	factory.CreateAppendage(s.ecs, sd.Model.Leg)
	factory.CreateAppendage(s.ecs, sd.Model.Arm)
	factory.CreateDoorknob(s.ecs, sd.Model.Doorknob(), maxReach(sd.Model.Decider.Thresholds()))
	factory.CreatePointer(s.ecs)
	factory.CreateSpark(s.ecs)
	factory.CreateHUD(s.ecs)
	factory.CreateSonification(s.ecs)
	factory.CreateSettings(s.ecs, systems.CurrentSettings())
	systems.RefreshHUD(s.ecs)

	s.controls = ui.NewControlsUI(systems.SoundEnabled(),
		func() { systems.ToggleSound(s.ecs) },
		func() {
			systems.ResetAll(s.ecs)
			systems.PlaySFX(s.ecs, cfg.SoundButton)
		},
	)
}

func (s *TravoltageScene) updateControls(e *ecs.ECS) {
	s.controls.Update()
	s.controls.SetSoundEnabled(systems.GetOrCreateSettings(e).SoundEnabled)
}

func (s *TravoltageScene) drawControls(e *ecs.ECS, screen *ebiten.Image) {
	s.controls.UI.Draw(screen)
}

// Close stops looping sounds and detaches the model.
func (s *TravoltageScene) Close() {
	if s.ecs == nil {
		return
	}
	systems.StopAllSounds(s.ecs)
	systems.UnbridgeModel(s.ecs)
}

// maxReach is the largest distance at which any threshold can fire.
func maxReach(table []sim.Threshold) float64 {
	reach := 0.0
	for _, th := range table {
		if th.MaxDistance > reach {
			reach = th.MaxDistance
		}
	}
	return reach
}
