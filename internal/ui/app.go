package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ColorBook/internal/state"
)

// RunApp assembles the window and runs the event loop. A non-nil loadErr
// means the startup image could not be opened; the app still runs, shows
// the error in a dialog and paints nothing until it exits.
func RunApp(board *state.Canvas, palette []color.Color, brushWidth int, loadErr error) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Color Book")

	brush := color.Color(color.Black)
	if len(palette) > 0 {
		brush = palette[0]
	}
	paint := NewPaintWidget(board, brush, brushWidth)
	toolbar := NewToolbar(paint, palette)

	statusBar := widget.NewLabel("Ready")
	paint.OnStatus = statusBar.SetText

	content := container.NewBorder(toolbar, statusBar, nil, nil, paint)
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(
		float32(board.Size().X)+40,
		float32(board.Size().Y)+120,
	))

	if loadErr != nil {
		statusBar.SetText("No image loaded")
		dialog.ShowError(loadErr, myWindow)
	}

	myWindow.ShowAndRun()
}
