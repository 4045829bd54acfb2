package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the control row: one swatch per palette color, then
// the Erase and Reset buttons.
func NewToolbar(paint *PaintWidget, palette []color.Color) fyne.CanvasObject {
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, paint.SetColor))
	}

	return container.NewHBox(
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewButton("Erase", paint.SetErase),
		widget.NewButton("Reset", paint.ResetBoard),
		layout.NewSpacer(),
	)
}
