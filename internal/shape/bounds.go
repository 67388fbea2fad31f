package shape

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Empty() bool {
	return r.Width <= 0 && r.Height <= 0
}

// Bounds returns the box covered by the shape, including half the stroke width.
func (s Shape) Bounds() Rect {
	var minX, minY, maxX, maxY float64
	switch s.Kind {
	case Freehand:
		if len(s.Points) == 0 {
			return Rect{}
		}
		minX, minY = s.Points[0].X, s.Points[0].Y
		maxX, maxY = minX, minY
		for _, p := range s.Points[1:] {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	case Line:
		minX, maxX = math.Min(s.Start.X, s.End.X), math.Max(s.Start.X, s.End.X)
		minY, maxY = math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)
	case Rectangle:
		minX, minY = s.Origin.X, s.Origin.Y
		maxX, maxY = minX+s.Width, minY+s.Height
	case Circle:
		minX, minY = s.Center.X-s.Radius, s.Center.Y-s.Radius
		maxX, maxY = s.Center.X+s.Radius, s.Center.Y+s.Radius
	default:
		return Rect{}
	}

	pad := s.Style.Width / 2
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Union returns the smallest box containing the bounds of every shape.
func Union(shapes []Shape) Rect {
	var out Rect
	first := true
	for _, s := range shapes {
		b := s.Bounds()
		if first {
			out, first = b, false
			continue
		}
		minX, minY := math.Min(out.X, b.X), math.Min(out.Y, b.Y)
		maxX := math.Max(out.X+out.Width, b.X+b.Width)
		maxY := math.Max(out.Y+out.Height, b.Y+b.Height)
		out = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	}
	return out
}
