package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ControlsUI is the Sound toggle and Reset All button pair in the bottom-right
// corner of the scene.
type ControlsUI struct {
	UI *ebitenui.UI

	OnToggleSound func()
	OnReset       func()

	soundBtn *widget.Button
	face     text.Face
}

func NewControlsUI(soundEnabled bool, onToggleSound func(), onReset func()) *ControlsUI {
	ui := &ControlsUI{
		OnToggleSound: onToggleSound,
		OnReset:       onReset,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.SetSoundEnabled(soundEnabled)
	return ui
}

func (ui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	ui.face = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (ui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	ui.soundBtn = ui.newButton("Sound: On", func() {
		if ui.OnToggleSound != nil {
			ui.OnToggleSound()
		}
	})
	panel.AddChild(ui.soundBtn)

	panel.AddChild(ui.newButton("Reset All", func() {
		if ui.OnReset != nil {
			ui.OnReset()
		}
	}))

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ControlsUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetSoundEnabled updates the Sound button label.
func (ui *ControlsUI) SetSoundEnabled(enabled bool) {
	if ui.soundBtn == nil {
		return
	}
	if textWidget := ui.soundBtn.Text(); textWidget != nil {
		textWidget.Label = SoundLabel(enabled)
	}
}

// SoundLabel is the Sound button text for the given state.
func SoundLabel(enabled bool) string {
	if enabled {
		return "Sound: On"
	}
	return "Sound: Off"
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}
