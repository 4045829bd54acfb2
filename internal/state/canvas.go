package state

import (
	"image"
	"image/color"
	"image/draw"

	"ColorBook/internal/mask"
	"ColorBook/internal/raster"
)

// Canvas owns the base image, the colored working image and the outline
// mask. All methods run on the UI event loop, so there is no locking here;
// each event runs to completion before the next one is dispatched.
type Canvas struct {
	size    image.Point
	base    *image.RGBA
	current *image.RGBA
	outline *mask.Mask
	blank   *image.RGBA
}

// New returns an empty canvas of the given size. Until SetImage succeeds
// every painting operation is a no-op and Current returns a white surface.
func New(width, height int) *Canvas {
	blank := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(blank, blank.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return &Canvas{
		size:  image.Pt(width, height),
		blank: blank,
	}
}

// SetImage installs the composited base image, copies it into the working
// image and derives the outline mask. The mask is computed once here and
// never changes afterwards, Reset included.
func (c *Canvas) SetImage(base *image.RGBA, threshold uint8) {
	c.base = base
	c.current = cloneRGBA(base)
	c.outline = mask.FromImage(base, threshold)
}

// Loaded reports whether an image has been installed.
func (c *Canvas) Loaded() bool {
	return c.base != nil
}

// Current returns the image to display. The caller must treat it as
// read-only; it is replaced wholesale by PaintSegment and Reset.
func (c *Canvas) Current() *image.RGBA {
	if c.current == nil {
		return c.blank
	}
	return c.current
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() image.Point {
	return c.size
}

// Outline exposes the protection mask, nil while no image is loaded.
func (c *Canvas) Outline() *mask.Mask {
	return c.outline
}

// SegmentAllowed rasterizes the segment from a to b and reports whether
// every in-bounds point avoids the outline. Out-of-bounds points are
// clipped, not errors.
func (c *Canvas) SegmentAllowed(a, b image.Point) bool {
	if c.outline == nil {
		return false
	}
	bounds := c.outline.Bounds()
	for _, p := range raster.Points(a, b) {
		if !p.In(bounds) {
			continue
		}
		if c.outline.Protected(p.X, p.Y) {
			return false
		}
	}
	return true
}

// PaintSegment commits one segment of a stroke. The segment is painted
// into a working copy which then replaces the current image, so a denied
// segment leaves the canvas pixel for pixel untouched. Reports whether
// the segment was committed.
func (c *Canvas) PaintSegment(a, b image.Point, col color.Color, width int) bool {
	if !c.Loaded() {
		return false
	}
	if !c.SegmentAllowed(a, b) {
		return false
	}
	next := cloneRGBA(c.current)
	raster.StampLine(next, a, b, col, width)
	c.current = next
	return true
}

// Reset discards all strokes, restoring the working image to an exact
// copy of the base. No-op while no image is loaded.
func (c *Canvas) Reset() {
	if !c.Loaded() {
		return
	}
	c.current = cloneRGBA(c.base)
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
