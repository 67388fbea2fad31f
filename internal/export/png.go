package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"LocalSketch/internal/shape"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	PNGFilename = "drawing.png"
	PNGMIMEType = "image/png"
)

// PNG rasterises the SVG rendition of shapes at the canvas size.
func PNG(w io.Writer, c Canvas, shapes []shape.Shape) error {
	img, err := Raster(c, shapes)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Raster draws shapes into a new RGBA image the size of the canvas.
func Raster(c Canvas, shapes []shape.Shape) (*image.RGBA, error) {
	doc, err := SVGDocument(c, visible(c, shapes))
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	wi, hi := pixels(c.Width), pixels(c.Height)
	icon.SetTarget(0, 0, float64(wi), float64(hi))
	img := image.NewRGBA(image.Rect(0, 0, wi, hi))
	scanner := rasterx.NewScannerGV(wi, hi, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(wi, hi, scanner), 1)
	return img, nil
}

// visible drops shapes that SVG renderers do not paint (zero-radius circles,
// zero-area rectangles) and shapes entirely outside the canvas.
func visible(c Canvas, shapes []shape.Shape) []shape.Shape {
	out := make([]shape.Shape, 0, len(shapes))
	for _, s := range shapes {
		switch {
		case s.Kind == shape.Circle && s.Radius == 0:
			continue
		case s.Kind == shape.Rectangle && (s.Width == 0 || s.Height == 0):
			continue
		}
		b := s.Bounds()
		if b.X > c.Width || b.Y > c.Height || b.X+b.Width < 0 || b.Y+b.Height < 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}

func pixels(v float64) int {
	n := int(math.Ceil(v))
	if n < 1 {
		return 1
	}
	return n
}
