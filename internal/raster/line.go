package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Points returns the pixels covered by the segment from a to b, in order,
// using Bresenham's algorithm. Both endpoints are always included; a == b
// yields a single point.
func Points(a, b image.Point) []image.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	adx, ady := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)

	pts := make([]image.Point, 0, max(adx, ady)+1)
	x, y := a.X, a.Y
	pts = append(pts, image.Pt(x, y))

	if adx >= ady {
		// X is the dominant axis; step Y when the accumulated error
		// crosses half of dx.
		err := adx / 2
		for x != b.X {
			x += sx
			err -= ady
			if err < 0 {
				y += sy
				err += adx
			}
			pts = append(pts, image.Pt(x, y))
		}
	} else {
		err := ady / 2
		for y != b.Y {
			y += sy
			err -= adx
			if err < 0 {
				x += sx
				err += ady
			}
			pts = append(pts, image.Pt(x, y))
		}
	}
	return pts
}

// StampLine draws the segment from a to b into dst with a square brush of
// the given width. Points outside dst's bounds are skipped.
func StampLine(dst *image.RGBA, a, b image.Point, c color.Color, width int) {
	if width < 1 {
		width = 1
	}
	half := width / 2
	src := image.NewUniform(c)
	for _, p := range Points(a, b) {
		stamp := image.Rect(p.X-half, p.Y-half, p.X-half+width, p.Y-half+width)
		draw.Draw(dst, stamp.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
