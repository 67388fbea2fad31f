package ui

import (
	"image/color"

	"LocalSketch/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// previewAlpha dims the shape under construction.
const previewAlpha = 0.6

// shapeObjects returns the canvas objects painting s. There is one
// function per shape variant.
func shapeObjects(s shape.Shape, preview bool) []fyne.CanvasObject {
	stroke, hasStroke := shapeColor(s.Style.Stroke, preview)
	fill, _ := shapeColor(s.Style.Fill, preview)
	width := float32(s.Style.Width)
	if !hasStroke {
		width = 0
	}

	switch s.Kind {
	case shape.Freehand:
		return pathToLines(s, stroke, width)
	case shape.Line:
		return []fyne.CanvasObject{lineObject(s.Start, s.End, stroke, width)}
	case shape.Rectangle:
		return []fyne.CanvasObject{rectObject(s, stroke, fill, width)}
	case shape.Circle:
		return []fyne.CanvasObject{circleObject(s, stroke, fill, width)}
	}
	return nil
}

func pathToLines(s shape.Shape, stroke color.Color, width float32) []fyne.CanvasObject {
	if len(s.Points) < 2 || width == 0 {
		return nil
	}
	lines := make([]fyne.CanvasObject, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		lines = append(lines, lineObject(s.Points[i-1], s.Points[i], stroke, width))
	}
	return lines
}

func lineObject(a, b shape.Point, stroke color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(stroke)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return line
}

func rectObject(s shape.Shape, stroke, fill color.Color, width float32) *canvas.Rectangle {
	rect := canvas.NewRectangle(fill)
	rect.StrokeColor = stroke
	rect.StrokeWidth = width
	rect.Move(fyne.NewPos(float32(s.Origin.X), float32(s.Origin.Y)))
	rect.Resize(fyne.NewSize(float32(s.Width), float32(s.Height)))
	return rect
}

func circleObject(s shape.Shape, stroke, fill color.Color, width float32) *canvas.Circle {
	circle := canvas.NewCircle(fill)
	circle.StrokeColor = stroke
	circle.StrokeWidth = width
	circle.Position1 = fyne.NewPos(float32(s.Center.X-s.Radius), float32(s.Center.Y-s.Radius))
	circle.Position2 = fyne.NewPos(float32(s.Center.X+s.Radius), float32(s.Center.Y+s.Radius))
	return circle
}

// shapeColor resolves a style colour; "none" becomes transparent.
func shapeColor(c string, preview bool) (color.Color, bool) {
	rgba, ok := shape.RGBA(c)
	if !ok {
		return color.Transparent, false
	}
	if preview {
		rgba.A = uint8(float64(rgba.A) * previewAlpha)
	}
	return rgba, true
}
