package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"ColorBook/internal/logs"
	"ColorBook/internal/state"
)

var logger = logs.Get("ui")

// PaintWidget is the drawable canvas area. It owns the interaction state
// (active color, in-progress stroke) and drives the state.Canvas under it.
type PaintWidget struct {
	widget.BaseWidget
	board   *state.Canvas
	brush   color.Color
	erasing bool
	width   int
	stroke  *state.Stroke

	// OnStatus, when set, receives short user-facing status messages.
	OnStatus func(text string)
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)

func NewPaintWidget(board *state.Canvas, brush color.Color, brushWidth int) *PaintWidget {
	w := &PaintWidget{
		board: board,
		brush: brush,
		width: brushWidth,
	}
	w.ExtendBaseWidget(w)
	return w
}

// SetColor selects a palette color and leaves erase mode.
func (w *PaintWidget) SetColor(c color.Color) {
	w.brush = c
	w.erasing = false
	w.setStatus("Color selected")
}

// SetErase switches to painting in the background white.
func (w *PaintWidget) SetErase() {
	w.erasing = true
	w.setStatus("Eraser selected")
}

// ResetBoard discards all coloring, restoring the original image.
func (w *PaintWidget) ResetBoard() {
	if !w.board.Loaded() {
		return
	}
	w.board.Reset()
	w.Refresh()
	w.setStatus("Canvas reset")
	logger.Info("canvas reset")
}

func (w *PaintWidget) activeColor() color.Color {
	if w.erasing {
		return state.Background
	}
	return w.brush
}

func (w *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !w.board.Loaded() {
		return
	}
	anchor := w.toImagePoint(e.Position)
	w.stroke = state.NewStroke(anchor, w.activeColor(), w.width)
	logger.Debug("stroke started",
		zap.String("stroke_id", w.stroke.ID),
		zap.Int("x", anchor.X),
		zap.Int("y", anchor.Y))
}

func (w *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.endStroke()
	}
}

// Dragged extends the current stroke by one segment. The segment is
// checked and painted atomically by the canvas; a denied segment simply
// paints nothing, the stroke stays alive and the anchor still advances.
func (w *PaintWidget) Dragged(e *fyne.DragEvent) {
	if w.stroke == nil {
		return
	}
	from, to := w.stroke.Extend(w.toImagePoint(e.Position))
	if w.board.PaintSegment(from, to, w.activeColor(), w.width) {
		w.Refresh()
	} else {
		logger.Debug("segment denied",
			zap.String("stroke_id", w.stroke.ID),
			zap.Int("x", to.X),
			zap.Int("y", to.Y))
	}
}

func (w *PaintWidget) DragEnd() {
	w.endStroke()
}

func (w *PaintWidget) endStroke() {
	if w.stroke == nil {
		return
	}
	logger.Debug("stroke ended",
		zap.String("stroke_id", w.stroke.ID),
		zap.Int("points", len(w.stroke.Points)))
	w.stroke = nil
}

// toImagePoint maps a widget-local position to image pixel coordinates,
// scaling for any difference between widget and image size. Results may be
// out of bounds; the canvas clips them.
func (w *PaintWidget) toImagePoint(pos fyne.Position) image.Point {
	sz := w.Size()
	img := w.board.Size()
	if sz.Width <= 0 || sz.Height <= 0 {
		return image.Pt(int(pos.X), int(pos.Y))
	}
	return image.Pt(
		int(pos.X*float32(img.X)/sz.Width),
		int(pos.Y*float32(img.Y)/sz.Height),
	)
}

func (w *PaintWidget) setStatus(text string) {
	if w.OnStatus != nil {
		w.OnStatus(text)
	}
}

func (w *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(w.board.Current())
	img.FillMode = canvas.ImageFillStretch
	return &paintRenderer{widget: w, img: img}
}

type paintRenderer struct {
	widget *PaintWidget
	img    *canvas.Image
}

func (r *paintRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.img}
}

// Refresh swaps in the current image wholesale; there is no partial
// redraw.
func (r *paintRenderer) Refresh() {
	r.img.Image = r.widget.board.Current()
	canvas.Refresh(r.img)
}

func (r *paintRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
}

func (r *paintRenderer) MinSize() fyne.Size {
	sz := r.widget.board.Size()
	return fyne.NewSize(float32(sz.X), float32(sz.Y))
}

func (r *paintRenderer) Destroy() {}
