package mask

import "image"

// DefaultThreshold marks a pixel as outline when all of its color channels
// fall strictly below this value on a 0-255 scale.
const DefaultThreshold uint8 = 50

// Mask is a binary grid the same size as the image it was built from.
// Set cells are outline pixels that must never be painted over.
type Mask struct {
	bounds image.Rectangle
	cells  []bool
}

// FromImage scans img once and marks every pixel whose R, G and B channels
// are all strictly below threshold. Grayscale sources work the same way,
// their single channel shows up as three equal ones.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := &Mask{
		bounds: b,
		cells:  make([]bool, b.Dx()*b.Dy()),
	}
	t := uint32(threshold)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 < t && g>>8 < t && bl>>8 < t {
				m.cells[m.index(x, y)] = true
			}
		}
	}
	return m
}

// Bounds returns the area the mask covers.
func (m *Mask) Bounds() image.Rectangle {
	return m.bounds
}

// Protected reports whether (x, y) is an outline pixel. Coordinates outside
// the mask are never protected.
func (m *Mask) Protected(x, y int) bool {
	if !image.Pt(x, y).In(m.bounds) {
		return false
	}
	return m.cells[m.index(x, y)]
}

func (m *Mask) index(x, y int) int {
	return (y-m.bounds.Min.Y)*m.bounds.Dx() + (x - m.bounds.Min.X)
}
