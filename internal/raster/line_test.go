package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want []image.Point
	}{
		{
			name: "single point",
			a:    image.Pt(5, 5),
			b:    image.Pt(5, 5),
			want: []image.Point{{X: 5, Y: 5}},
		},
		{
			name: "horizontal",
			a:    image.Pt(0, 0),
			b:    image.Pt(3, 0),
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "horizontal reversed",
			a:    image.Pt(3, 0),
			b:    image.Pt(0, 0),
			want: []image.Point{{3, 0}, {2, 0}, {1, 0}, {0, 0}},
		},
		{
			name: "vertical",
			a:    image.Pt(2, 1),
			b:    image.Pt(2, 4),
			want: []image.Point{{2, 1}, {2, 2}, {2, 3}, {2, 4}},
		},
		{
			name: "diagonal",
			a:    image.Pt(0, 0),
			b:    image.Pt(3, 3),
			want: []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "steep",
			a:    image.Pt(0, 0),
			b:    image.Pt(1, 4),
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("Points(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Points(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

// Every segment must include both endpoints in order and step the dominant
// axis exactly one unit per point, never skipping or backtracking.
func TestPoints_Monotonic(t *testing.T) {
	endpoints := []struct{ a, b image.Point }{
		{image.Pt(0, 0), image.Pt(10, 3)},
		{image.Pt(0, 0), image.Pt(3, 10)},
		{image.Pt(7, 2), image.Pt(-5, 9)},
		{image.Pt(-3, -3), image.Pt(4, -8)},
		{image.Pt(1, 1), image.Pt(1, 1)},
		{image.Pt(100, 50), image.Pt(0, 0)},
	}

	for _, tt := range endpoints {
		pts := Points(tt.a, tt.b)
		if pts[0] != tt.a {
			t.Errorf("Points(%v, %v) starts at %v", tt.a, tt.b, pts[0])
		}
		if pts[len(pts)-1] != tt.b {
			t.Errorf("Points(%v, %v) ends at %v", tt.a, tt.b, pts[len(pts)-1])
		}

		dx, dy := tt.b.X-tt.a.X, tt.b.Y-tt.a.Y
		xMajor := abs(dx) >= abs(dy)
		for i := 1; i < len(pts); i++ {
			stepX := pts[i].X - pts[i-1].X
			stepY := pts[i].Y - pts[i-1].Y
			if xMajor {
				if stepX != sign(dx) {
					t.Fatalf("Points(%v, %v): dominant-axis step %d at index %d", tt.a, tt.b, stepX, i)
				}
				if abs(stepY) > 1 {
					t.Fatalf("Points(%v, %v): minor-axis jump %d at index %d", tt.a, tt.b, stepY, i)
				}
			} else {
				if stepY != sign(dy) {
					t.Fatalf("Points(%v, %v): dominant-axis step %d at index %d", tt.a, tt.b, stepY, i)
				}
				if abs(stepX) > 1 {
					t.Fatalf("Points(%v, %v): minor-axis jump %d at index %d", tt.a, tt.b, stepX, i)
				}
			}
		}
	}
}

func TestStampLine(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	t.Run("width one paints the center line only", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		StampLine(img, image.Pt(1, 4), image.Pt(5, 4), red, 1)
		for x := 1; x <= 5; x++ {
			if img.RGBAAt(x, 4) != red {
				t.Errorf("pixel (%d,4) not painted", x)
			}
		}
		if img.RGBAAt(3, 3) == red || img.RGBAAt(3, 5) == red {
			t.Errorf("width-1 stamp bled into neighboring rows")
		}
	})

	t.Run("wide brush covers a square around each point", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		StampLine(img, image.Pt(4, 4), image.Pt(4, 4), red, 3)
		for y := 3; y <= 5; y++ {
			for x := 3; x <= 5; x++ {
				if img.RGBAAt(x, y) != red {
					t.Errorf("pixel (%d,%d) not painted", x, y)
				}
			}
		}
	})

	t.Run("clips at the image edge", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		StampLine(img, image.Pt(-3, 0), image.Pt(10, 0), red, 3)
		if img.RGBAAt(0, 0) != red {
			t.Errorf("in-bounds edge pixel not painted")
		}
	})

	t.Run("zero width behaves like width one", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		StampLine(img, image.Pt(2, 2), image.Pt(2, 2), red, 0)
		if img.RGBAAt(2, 2) != red {
			t.Errorf("pixel (2,2) not painted")
		}
	})
}
