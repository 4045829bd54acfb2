package state

import (
	"image"
	"image/color"
	"time"

	"github.com/google/uuid"
)

// Background is the color the canvas starts with and the color the eraser
// paints in.
var Background color.Color = color.White

// Stroke is one continuous drag from press to release. Points holds every
// recorded mouse position; each consecutive pair is a segment.
type Stroke struct {
	ID      string
	Points  []image.Point
	Color   color.Color
	Width   int
	Started time.Time
}

// NewStroke starts a stroke anchored at p.
func NewStroke(p image.Point, c color.Color, width int) *Stroke {
	return &Stroke{
		ID:      uuid.NewString(),
		Points:  []image.Point{p},
		Color:   c,
		Width:   width,
		Started: time.Now(),
	}
}

// Last returns the most recently recorded position.
func (s *Stroke) Last() image.Point {
	return s.Points[len(s.Points)-1]
}

// Extend records a new position and returns the segment it forms with the
// previous one.
func (s *Stroke) Extend(p image.Point) (from, to image.Point) {
	from = s.Last()
	s.Points = append(s.Points, p)
	return from, p
}
