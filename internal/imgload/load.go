package imgload

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"ColorBook/internal/logs"
	"ColorBook/internal/state"
)

// ErrDecode marks files that opened fine but could not be decoded as an
// image. File-not-found surfaces as the os.Open error, so callers can tell
// the two apart with errors.Is(err, fs.ErrNotExist).
var ErrDecode = errors.New("not a decodable image")

var logger = logs.Get("imgload")

// Load opens and decodes the image at path and composites it onto a white
// canvas of the given size.
func Load(path string, size image.Point) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w: %w", path, ErrDecode, err)
	}
	logger.Info("image loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", src.Bounds().Dx()),
		zap.Int("height", src.Bounds().Dy()))

	return Compose(src, size), nil
}

// Compose centers src on a white canvas of the given size. Sources larger
// than the canvas are scaled down to fit, preserving aspect ratio; smaller
// ones are placed as-is.
func Compose(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(state.Background), image.Point{}, draw.Src)

	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w > size.X || h > size.Y {
		sx := float64(size.X) / float64(w)
		sy := float64(size.Y) / float64(h)
		scale := sx
		if sy < sx {
			scale = sy
		}
		w = max(int(float64(w)*scale), 1)
		h = max(int(float64(h)*scale), 1)
		scaled := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, sb, xdraw.Over, nil)
		src = scaled
		sb = scaled.Bounds()
	}

	off := image.Pt((size.X-w)/2, (size.Y-h)/2)
	draw.Draw(dst, image.Rectangle{Min: off, Max: off.Add(image.Pt(w, h))}, src, sb.Min, draw.Over)
	return dst
}
