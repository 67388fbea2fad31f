package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/srwiley/oksvg"
)

var (
	ErrNonFinite      = errors.New("coordinate is not a finite number")
	ErrInvalidWidth   = errors.New("stroke width must be a positive number")
	ErrInvalidColor   = errors.New("invalid colour")
	ErrNegativeExtent = errors.New("negative width, height or radius")
	ErrUnknownKind    = errors.New("unknown shape kind")
)

// None is the colour value that disables a stroke or a fill.
const None = "none"

// Kind tags the variant a Shape holds.
type Kind int

const (
	Freehand Kind = iota
	Line
	Rectangle
	Circle
)

func (k Kind) String() string {
	switch k {
	case Freehand:
		return "Freehand"
	case Line:
		return "Line"
	case Rectangle:
		return "Rectangle"
	case Circle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// ParseKind accepts the tool names used by toolbars and config files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pen", "freehand", "path":
		return Freehand, nil
	case "line":
		return Line, nil
	case "rect", "rectangle":
		return Rectangle, nil
	case "circle":
		return Circle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Point is a position in surface-local coordinates, origin at the top-left.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Style holds the stroke and fill attributes of a shape.
type Style struct {
	Stroke string  `json:"stroke"`
	Fill   string  `json:"fill"`
	Width  float64 `json:"width"`
}

// Validate checks that the width is positive and both colours parse.
func (s Style) Validate() error {
	if !finite(s.Width) || s.Width <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, s.Width)
	}
	for _, c := range []string{s.Stroke, s.Fill} {
		if _, err := parseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Shape is one drawable primitive. Only the fields of its Kind are meaningful.
type Shape struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Style Style  `json:"style"`

	// Freehand
	Points []Point `json:"points,omitempty"`

	// Line
	Start Point `json:"start"`
	End   Point `json:"end"`

	// Rectangle
	Origin Point   `json:"origin"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Circle
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// New allocates the initial, zero-size shape of a gesture starting at start.
func New(kind Kind, style Style, start Point) (*Shape, error) {
	if !start.Finite() {
		return nil, ErrNonFinite
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	s := &Shape{
		ID:    uuid.NewString(),
		Kind:  kind,
		Style: style,
	}
	switch kind {
	case Freehand:
		s.Points = []Point{start}
	case Line:
		s.Start, s.End = start, start
	case Rectangle:
		s.Origin = start
	case Circle:
		s.Center = start
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return s, nil
}

// NewRectangle returns the rectangle spanned by two opposite corners,
// normalised so that Origin is the top-left corner.
func NewRectangle(style Style, a, b Point) Shape {
	s := Shape{ID: uuid.NewString(), Kind: Rectangle, Style: style}
	s.SpanRectangle(a, b)
	return s
}

// NewCircle returns a circle; a negative radius is taken by absolute value.
func NewCircle(style Style, center Point, radius float64) Shape {
	return Shape{ID: uuid.NewString(), Kind: Circle, Style: style, Center: center, Radius: math.Abs(radius)}
}

// SpanRectangle sets the rectangle from two opposite corners.
func (s *Shape) SpanRectangle(a, b Point) {
	s.Origin = Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
	s.Width = math.Abs(b.X - a.X)
	s.Height = math.Abs(b.Y - a.Y)
}

// Clone returns a deep copy; the point slice is not shared.
func (s Shape) Clone() Shape {
	if s.Points != nil {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		s.Points = pts
	}
	return s
}

// Validate reports whether the shape's geometry and style are usable.
func (s Shape) Validate() error {
	if err := s.Style.Validate(); err != nil {
		return err
	}
	var pts []Point
	var dims []float64
	switch s.Kind {
	case Freehand:
		pts = s.Points
	case Line:
		pts = []Point{s.Start, s.End}
	case Rectangle:
		pts = []Point{s.Origin}
		dims = []float64{s.Width, s.Height}
	case Circle:
		pts = []Point{s.Center}
		dims = []float64{s.Radius}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, s.Kind)
	}
	for _, p := range pts {
		if !p.Finite() {
			return ErrNonFinite
		}
	}
	for _, d := range dims {
		if !finite(d) {
			return ErrNonFinite
		}
		if d < 0 {
			return ErrNegativeExtent
		}
	}
	return nil
}

// RGBA converts a style colour. ok is false for "none".
func RGBA(c string) (col color.NRGBA, ok bool) {
	parsed, err := parseColor(c)
	if err != nil || parsed == nil {
		return color.NRGBA{}, false
	}
	return color.NRGBAModel.Convert(parsed).(color.NRGBA), true
}

func parseColor(c string) (color.Color, error) {
	if strings.TrimSpace(c) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	parsed, err := oksvg.ParseSVGColor(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidColor, c, err)
	}
	return parsed, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
