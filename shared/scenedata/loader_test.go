package scenedata

import (
	"errors"
	"math"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/travoltage/sim"
)

const minimalScene = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="20" tileheight="20" infinite="0" nextlayerid="6" nextobjectid="8">
 <objectgroup id="1" name="Appendages">
  <object id="1" name="arm" x="50" y="40">
   <properties>
    <property name="length" type="float" value="30"/>
    <property name="angleOffset" type="float" value="0.5"/>
    <property name="minAngle" type="float" value="-1"/>
    <property name="maxAngle" type="float" value="1"/>
    <property name="initialAngle" type="float" value="0"/>
   </properties>
   <point/>
  </object>
  <object id="2" name="leg" x="60" y="70">
   <properties>
    <property name="length" type="float" value="25"/>
    <property name="minAngle" type="float" value="0"/>
    <property name="maxAngle" type="float" value="2"/>
    <property name="initialAngle" type="float" value="1"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Doorknob">
  <object id="3" x="150" y="35"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="ElectronSpawn">
  <object id="4" x="10" y="80" width="12" height="8"/>
 </objectgroup>
 <objectgroup id="4" name="Body">
  <object id="5" x="5" y="5">
   <polygon points="0,0 10,0 10,10"/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="ForceLines">
  <object id="7" x="100" y="10"><polyline points="0,0 5,5"/></object>
  <object id="6" x="0" y="0"><polyline points="0,0 1,1 2,0"/></object>
 </objectgroup>
</map>
`

const sceneWithoutKnob = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="20" tileheight="20" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="ElectronSpawn">
  <object id="1" x="10" y="80" width="12" height="8"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"scenes/mini.tmx": {Data: []byte(minimalScene)}}

	layout, err := Load(fsys, "scenes/mini.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if layout.Name != "mini" || layout.MapWidth != 200 || layout.MapHeight != 100 {
		t.Fatalf("header = %q %dx%d", layout.Name, layout.MapWidth, layout.MapHeight)
	}
	if layout.Arm.Pivot.X != 50 || layout.Arm.Pivot.Y != 40 || layout.Arm.Length != 30 || layout.Arm.AngleOffset != 0.5 {
		t.Fatalf("arm = %+v", layout.Arm)
	}
	if layout.Leg.MaxAngle != 2 || layout.Leg.InitialAngle != 1 || layout.Leg.AngleOffset != 0 {
		t.Fatalf("leg = %+v", layout.Leg)
	}
	if layout.Doorknob.X != 150 || layout.Doorknob.Y != 35 {
		t.Fatalf("doorknob = %v", layout.Doorknob)
	}
	if layout.ElectronSpawn != (Box{X: 10, Y: 80, W: 12, H: 8}) {
		t.Fatalf("spawn = %+v", layout.ElectronSpawn)
	}
	if len(layout.Body) != 3 || layout.Body[2].X != 15 || layout.Body[2].Y != 15 {
		t.Fatalf("body = %v", layout.Body)
	}
	if len(layout.ForceLines) != 2 {
		t.Fatalf("force lines = %v", layout.ForceLines)
	}
	if len(layout.ForceLines[0]) != 3 || layout.ForceLines[1][1].X != 105 {
		t.Fatalf("force lines not in object order: %v", layout.ForceLines)
	}
}

func TestLoadMissingObjects(t *testing.T) {
	fsys := fstest.MapFS{"bad.tmx": {Data: []byte(sceneWithoutKnob)}}

	_, err := Load(fsys, "bad.tmx")
	if !errors.Is(err, ErrMissingObject) {
		t.Fatalf("err = %v, want ErrMissingObject", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestApplyBuildsValidModel(t *testing.T) {
	fsys := fstest.MapFS{"mini.tmx": {Data: []byte(minimalScene)}}
	layout, err := Load(fsys, "mini.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg := layout.Apply(sim.DefaultConfig())
	if cfg.Arm.Pivot != layout.Arm.Pivot || cfg.Doorknob != layout.Doorknob || cfg.SpawnBox.Width != 12 {
		t.Fatalf("layout not applied: %+v", cfg)
	}
	if len(cfg.Thresholds) != len(sim.DefaultConfig().Thresholds) {
		t.Fatalf("Apply touched the threshold table")
	}
	if _, err := sim.NewModel(cfg); err != nil {
		t.Fatalf("NewModel: %v", err)
	}
}

func TestStockSceneMatchesDefaults(t *testing.T) {
	layouts, names, err := LoadAll(os.DirFS("../../assets"), "scenes")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) == 0 || names[0] != "travoltage" {
		t.Fatalf("names = %v", names)
	}
	layout := layouts["travoltage"]

	def := sim.DefaultConfig()
	cfg := layout.Apply(def)
	const eps = 1e-5
	if math.Abs(cfg.Arm.MinAngle-def.Arm.MinAngle) > eps || math.Abs(cfg.Arm.MaxAngle-def.Arm.MaxAngle) > eps {
		t.Fatalf("arm range = [%v, %v], want [%v, %v]", cfg.Arm.MinAngle, cfg.Arm.MaxAngle, def.Arm.MinAngle, def.Arm.MaxAngle)
	}
	if cfg.Doorknob != def.Doorknob || cfg.Leg.Pivot != def.Leg.Pivot {
		t.Fatalf("stock scene drifted from DefaultConfig")
	}
	if len(layout.Body) < 3 || len(layout.ForceLines) == 0 {
		t.Fatalf("stock scene is missing debug geometry")
	}
}
