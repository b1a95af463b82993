package systems

import (
	"github.com/automoto/travoltage/components"
	cfg "github.com/automoto/travoltage/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func getSpark(e *ecs.ECS) *components.SparkData {
	entry, ok := components.Spark.First(e.World)
	if !ok {
		return nil
	}
	return components.Spark.Get(entry)
}

// onSpark shows the bolt at full strength, or starts fading it out.
func onSpark(e *ecs.ECS, ev SparkEvent) {
	spark := getSpark(e)
	if spark == nil {
		return
	}
	if ev.Visible {
		spark.Visible = true
		spark.Alpha = 1
		spark.Fade = nil
		return
	}
	if spark.Visible {
		spark.Fade = gween.New(spark.Alpha, 0, cfg.Spark.FadeDuration, ease.OutCubic)
	}
}

// UpdateSpark reshuffles the bolt and advances its fade.
func UpdateSpark(e *ecs.ECS) {
	spark := getSpark(e)
	if spark == nil || !spark.Visible {
		return
	}
	spark.Seed++
	if spark.Fade == nil {
		return
	}
	alpha, finished := spark.Fade.Update(float32(frameSeconds()))
	spark.Alpha = alpha
	if finished {
		spark.Visible = false
		spark.Alpha = 0
		spark.Fade = nil
	}
}
