// Package session turns pointer gestures into committed shapes.
//
// A Session is created per canvas and owns that canvas's drawing surface and
// history. The host feeds it pointer events and toolbar commands from its
// event loop; nothing here blocks or locks.
package session

import (
	"fmt"
	"log/slog"
	"math"

	"LocalSketch/internal/shape"
	"LocalSketch/internal/state"
)

// Mode is the state of the gesture state machine.
type Mode int

const (
	Idle Mode = iota
	Drawing
)

func (m Mode) String() string {
	if m == Drawing {
		return "Drawing"
	}
	return "Idle"
}

// DefaultStyle is used until the host calls SetStyle.
var DefaultStyle = shape.Style{Stroke: "#000000", Fill: shape.None, Width: 2}

type Session struct {
	board  *state.Board
	tool   shape.Kind
	style  shape.Style
	mode   Mode
	start  shape.Point
	cur    *shape.Shape
	closed bool

	// OnPreview receives the in-progress shape after every gesture update.
	OnPreview func(s shape.Shape)
	// OnChange receives the committed shapes after commit, undo, redo and clear.
	OnChange func(shapes []shape.Shape)
}

// Option configures a Session at construction.
type Option func(*Session) error

func WithTool(k shape.Kind) Option {
	return func(s *Session) error {
		s.tool = k
		return nil
	}
}

func WithStyle(st shape.Style) Option {
	return func(s *Session) error {
		return s.SetStyle(st)
	}
}

func New(opts ...Option) (*Session, error) {
	s := &Session{
		board: state.NewBoard(),
		tool:  shape.Freehand,
		style: DefaultStyle,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetTool selects the variant created by the next gesture.
func (s *Session) SetTool(k shape.Kind) {
	s.tool = k
}

func (s *Session) Tool() shape.Kind { return s.tool }

// SetStyle sets the attributes read at the start of the next gesture. A
// gesture already in progress keeps the style it started with.
func (s *Session) SetStyle(st shape.Style) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("set style: %w", err)
	}
	s.style = st
	return nil
}

func (s *Session) Style() shape.Style { return s.style }
func (s *Session) Mode() Mode         { return s.mode }

// Begin starts a gesture at p. It is ignored while a gesture is already in
// progress or when p is not a finite point.
func (s *Session) Begin(p shape.Point) {
	if s.closed || s.mode == Drawing {
		return
	}
	cur, err := shape.New(s.tool, s.style, p)
	if err != nil {
		state.Logger().Debug("gesture ignored", slog.String("tool", s.tool.String()), slog.Any("err", err))
		return
	}
	s.mode = Drawing
	s.start = p
	s.cur = cur
	s.preview()
}

// Move updates the in-progress shape. It is a no-op when idle. A non-finite
// point abandons the whole gesture.
func (s *Session) Move(p shape.Point) {
	if s.closed || s.mode != Drawing {
		return
	}
	if !p.Finite() {
		state.Logger().Debug("gesture abandoned", slog.String("reason", shape.ErrNonFinite.Error()))
		s.Cancel()
		return
	}
	switch s.cur.Kind {
	case shape.Freehand:
		s.cur.Points = append(s.cur.Points, p)
	case shape.Line:
		s.cur.End = p
	case shape.Rectangle:
		s.cur.SpanRectangle(s.start, p)
	case shape.Circle:
		s.cur.Radius = math.Hypot(p.X-s.start.X, p.Y-s.start.Y)
	}
	s.preview()
}

// End commits the in-progress shape, however small. It is a no-op when idle.
func (s *Session) End() {
	if s.closed || s.mode != Drawing {
		return
	}
	cur := s.cur
	s.mode = Idle
	s.cur = nil
	s.board.Commit(*cur)
	s.changed()
}

// Cancel drops the in-progress shape without committing it.
func (s *Session) Cancel() {
	s.mode = Idle
	s.cur = nil
}

// Current returns a copy of the in-progress shape.
func (s *Session) Current() (shape.Shape, bool) {
	if s.mode != Drawing || s.cur == nil {
		return shape.Shape{}, false
	}
	return s.cur.Clone(), true
}

// Shapes returns the committed shapes in z-order.
func (s *Session) Shapes() []shape.Shape {
	return s.board.Shapes()
}

func (s *Session) Undo() {
	if s.closed {
		return
	}
	if s.board.Undo() {
		s.changed()
	}
}

func (s *Session) Redo() {
	if s.closed {
		return
	}
	if s.board.Redo() {
		s.changed()
	}
}

// Clear discards every shape, the history and any gesture in progress.
func (s *Session) Clear() {
	if s.closed {
		return
	}
	s.Cancel()
	s.board.Clear()
	s.changed()
}

func (s *Session) CanUndo() bool { return s.board.CanUndo() }
func (s *Session) CanRedo() bool { return s.board.CanRedo() }

// Status is the one-line HUD text for the host's status bar.
func (s *Session) Status() string {
	points := 0
	if s.mode == Drawing && s.cur.Kind == shape.Freehand {
		points = len(s.cur.Points)
	}
	return fmt.Sprintf("Tool: %s • Points: %d", s.tool, points)
}

// Close tears the session down. Every later call is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.Cancel()
	s.board.Clear()
	s.closed = true
	s.OnPreview = nil
	s.OnChange = nil
}

func (s *Session) preview() {
	if s.OnPreview != nil {
		s.OnPreview(s.cur.Clone())
	}
}

func (s *Session) changed() {
	if s.OnChange != nil {
		s.OnChange(s.board.Shapes())
	}
}
