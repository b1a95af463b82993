package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/fonts"
	"github.com/automoto/travoltage/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawDebug renders the body outline, force lines, finger marker and the
// resolv objects when the debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowDebug {
		return
	}
	sd := GetSimulation(ecs)
	if sd == nil {
		return
	}

	if sd.Layout != nil {
		drawPolyline(screen, sd.Layout.Body, true, cfg.HUD.BodyOutlineColor)
		for _, line := range sd.Layout.ForceLines {
			drawPolyline(screen, line, false, cfg.HUD.ForceLineColor)
		}
	}

	finger := sd.Model.Arm.FingerPosition()
	vector.StrokeCircle(screen, float32(finger.X), float32(finger.Y), 4, 1, cfg.HUD.FingerMarkerColor, true)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvKnob) {
				c = color.RGBA{255, 200, 0, 255}
			} else if obj.HasTags(tags.ResolvPointer) {
				c = color.RGBA{255, 0, 255, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	info := fmt.Sprintf("state %s  distance %.1f  carriers %d/%d  tick %d",
		sd.Model.Decider.State(), sd.Model.FingerDistance(),
		sd.Model.Accumulator.ActiveCount(), sd.Model.Accumulator.Count(), sd.Model.Ticks())
	text.Draw(screen, info, fonts.Small.Get(), int(cfg.HUD.Margin), screen.Bounds().Dy()-int(cfg.HUD.Margin), cfg.HUD.TextColor)
}

func drawPolyline(screen *ebiten.Image, pts []dmath.Vec2, closed bool, c color.RGBA) {
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(screen, float32(pts[i].X), float32(pts[i].Y), float32(pts[i+1].X), float32(pts[i+1].Y), 1, c, true)
	}
	if closed && len(pts) > 2 {
		a, b := pts[len(pts)-1], pts[0]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
	}
}
