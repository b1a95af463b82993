package systems

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/automoto/travoltage/shared/gamemath"
	"github.com/automoto/travoltage/systems/factory"
	"github.com/automoto/travoltage/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	bodyImage *ebiten.Image
	spanBuf   []float64
)

// DrawScene renders the door, the doorknob, the carpet under the shoe's
// contact band and the body.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}
	model := sd.Model
	knob := model.Doorknob()
	height := float32(screen.Bounds().Dy())

	// Door edge sits just left of the knob
	vector.FillRect(screen, float32(knob.X)-12, float32(knob.Y)-170, 90, height, cfg.HUD.DoorColor, false)

	simCfg := model.Config()
	leg := simCfg.Leg
	a := gamemath.PolarOffset(leg.Pivot, leg.Length, simCfg.ContactBand.Min+leg.AngleOffset)
	b := gamemath.PolarOffset(leg.Pivot, leg.Length, simCfg.ContactBand.Max+leg.AngleOffset)
	top := math.Min(a.Y, b.Y)
	left, right := math.Min(a.X, b.X), math.Max(a.X, b.X)
	vector.FillRect(screen, float32(left)-20, float32(top), float32(right-left)+40, height-float32(top), cfg.HUD.CarpetColor, false)

	if sd.Layout != nil && len(sd.Layout.Body) > 2 {
		if bodyImage == nil {
			bodyImage = renderPolygon(sd.Layout.Body, screen.Bounds().Dx(), screen.Bounds().Dy(), cfg.HUD.BodyColor)
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		screen.DrawImage(bodyImage, drawOp)
	}

	vector.DrawFilledCircle(screen, float32(knob.X), float32(knob.Y), cfg.HUD.DoorknobRadius, cfg.HUD.DoorknobColor, true)
}

// renderPolygon fills poly into a new image one scanline at a time.
func renderPolygon(poly []dmath.Vec2, width, height int, c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	minP, maxP := gamemath.Bounds(poly)
	for y := math.Floor(minP.Y); y <= maxP.Y; y++ {
		spanBuf = gamemath.ScanlineSpans(poly, y+0.5, spanBuf)
		for i := 0; i+1 < len(spanBuf); i += 2 {
			vector.FillRect(img, float32(spanBuf[i]), float32(y), float32(spanBuf[i+1]-spanBuf[i]), 1, c, false)
		}
	}
	return img
}

// DrawAppendages renders both limbs and the dashed "drag me" circle around
// grab handles that have not been used yet.
func DrawAppendages(e *ecs.ECS, screen *ebiten.Image) {
	sd := GetSimulation(e)
	if sd == nil {
		return
	}

	tags.Appendage.Each(e.World, func(entry *donburi.Entry) {
		ad := components.Appendage.Get(entry)
		limb := sd.Model.Appendage(ad.Kind)
		view := factory.ViewConfig(ad.Kind)
		pivot := limb.Config().Pivot
		tip := limb.TipPosition()

		vector.StrokeLine(screen, float32(pivot.X), float32(pivot.Y), float32(tip.X), float32(tip.Y), view.Thickness, view.Color, true)
		vector.DrawFilledCircle(screen, float32(pivot.X), float32(pivot.Y), view.JointRadius, view.Color, true)
		vector.DrawFilledCircle(screen, float32(tip.X), float32(tip.Y), view.JointRadius, view.Color, true)

		if ad.ShowBorder {
			drawDashedCircle(screen, tip, float64(view.BorderRadius), view.BorderDash, view.BorderColor)
		}
	})
}

func drawDashedCircle(screen *ebiten.Image, center dmath.Vec2, radius, dash float64, c color.RGBA) {
	if radius <= 0 || dash <= 0 {
		return
	}
	// Even count so the pattern closes cleanly
	n := int(2*math.Pi*radius/dash) &^ 1
	if n < 2 {
		n = 2
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i += 2 {
		p0 := gamemath.PolarOffset(center, radius, float64(i)*step)
		p1 := gamemath.PolarOffset(center, radius, float64(i+1)*step)
		vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), 2, c, true)
	}
}

// DrawCarriers renders every charge carrier as a small minus sign.
func DrawCarriers(e *ecs.ECS, screen *ebiten.Image) {
	r := cfg.Carrier.Radius
	tags.Carrier.Each(e.World, func(entry *donburi.Entry) {
		cd := components.Carrier.Get(entry)
		p := CarrierPosition(cd)
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledCircle(screen, x, y, r, cfg.Carrier.Color, true)
		vector.StrokeLine(screen, x-r*0.6, y, x+r*0.6, y, 1.5, cfg.Carrier.MinusColor, true)
	})
}

// DrawSpark renders a jagged bolt from the fingertip to the doorknob.
func DrawSpark(e *ecs.ECS, screen *ebiten.Image) {
	spark, sd := getSpark(e), GetSimulation(e)
	if spark == nil || sd == nil || !spark.Visible || spark.Alpha <= 0 {
		return
	}

	points := BoltPoints(sd.Model.Arm.FingerPosition(), sd.Model.Doorknob(), cfg.Spark.Segments, cfg.Spark.Jitter, spark.Seed)
	glow := fade(cfg.Spark.GlowColor, spark.Alpha)
	core := fade(cfg.Spark.Color, spark.Alpha)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), cfg.Spark.Thickness*3, glow, true)
	}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), cfg.Spark.Thickness, core, true)
	}
}

// BoltPoints splits from-to into segments and offsets the inner points
// sideways by up to jitter. The ends stay fixed.
func BoltPoints(from, to dmath.Vec2, segments int, jitter float64, seed uint64) []dmath.Vec2 {
	if segments < 1 {
		segments = 1
	}
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	var nx, ny float64
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}

	points := make([]dmath.Vec2, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		p := dmath.Vec2{X: from.X + dx*t, Y: from.Y + dy*t}
		if i > 0 && i < segments {
			off := (rng.Float64()*2 - 1) * jitter
			p.X += nx * off
			p.Y += ny * off
		}
		points = append(points, p)
	}
	return points
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := gamemath.Clamp(float64(alpha), 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
