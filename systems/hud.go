package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/fonts"
	"github.com/automoto/travoltage/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func getHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}

// RefreshHUD describes the current pose of both limbs.
func RefreshHUD(e *ecs.ECS) {
	hud, sd := getHUD(e), GetSimulation(e)
	if hud == nil || sd == nil {
		return
	}
	hud.ArmStatus = cfg.HUD.ArmRanges.DescribeAppendage(sd.Model.Arm)
	hud.LegStatus = cfg.HUD.LegRanges.DescribeAppendage(sd.Model.Leg)
}

func onHUDAngleChanged(e *ecs.ECS, ev AngleChangedEvent) {
	hud, sd := getHUD(e), GetSimulation(e)
	if hud == nil || sd == nil {
		return
	}
	limb := sd.Model.Appendage(ev.Kind)
	if ev.Kind == sim.Leg {
		hud.LegStatus = cfg.HUD.LegRanges.DescribeAppendage(limb)
	} else {
		hud.ArmStatus = cfg.HUD.ArmRanges.DescribeAppendage(limb)
	}
}

func onHUDSpark(e *ecs.ECS, ev SparkEvent) {
	hud := getHUD(e)
	if hud == nil {
		return
	}
	if ev.Visible {
		hud.Discharging = true
		hud.Drained = 0
		return
	}
	hud.Discharging = false
	if hud.Drained > 0 {
		hud.Message = fmt.Sprintf(cfg.HUD.DischargeMessage, hud.Drained)
		hud.MessageTimer = cfg.HUD.MessageDuration
	}
}

func onHUDCarrierRemoved(e *ecs.ECS, _ CarrierRemovedEvent) {
	if hud := getHUD(e); hud != nil && hud.Discharging {
		hud.Drained++
	}
}

// onHUDReset drops any discharge message; a reset is not a discharge.
func onHUDReset(e *ecs.ECS) {
	hud := getHUD(e)
	if hud == nil {
		return
	}
	hud.Discharging = false
	hud.Drained = 0
	hud.Message = ""
	hud.MessageTimer = 0
	RefreshHUD(e)
}

// UpdateHUD counts down the discharge message.
func UpdateHUD(e *ecs.ECS) {
	hud := getHUD(e)
	if hud == nil || hud.MessageTimer <= 0 {
		return
	}
	hud.MessageTimer -= frameSeconds()
	if hud.MessageTimer <= 0 {
		hud.MessageTimer = 0
		hud.Message = ""
	}
}

// DrawHUD renders the pose descriptions, charge count and discharge message
// in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud, sd := getHUD(e), GetSimulation(e)
	if hud == nil || sd == nil {
		return
	}

	lines := []string{
		hud.ArmStatus,
		hud.LegStatus,
		fmt.Sprintf("Charge: %d", sd.Model.Accumulator.ActiveCount()),
	}
	if hud.Message != "" {
		lines = append(lines, hud.Message)
	}

	face := fonts.HUD.Get()
	margin, lineHeight := cfg.HUD.Margin, cfg.HUD.LineHeight
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}

	vector.FillRect(screen,
		float32(margin), float32(margin),
		float32(width)+float32(margin)*2, float32(lineHeight)*float32(len(lines))+float32(margin),
		cfg.HUD.PanelColor, false)

	for i, line := range lines {
		var c color.Color = cfg.HUD.TextColor
		if i == len(lines)-1 && hud.Message != "" {
			c = cfg.Yellow
		}
		text.Draw(screen, line, face, int(margin*2), int(margin+lineHeight*float64(i+1)), c)
	}
}
