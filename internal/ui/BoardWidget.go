package ui

import (
	"image/color"
	"log"
	"math"

	"LocalSketch/internal/export"
	"LocalSketch/internal/session"
	"LocalSketch/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. It forwards pointer events to its
// session and paints the committed shapes plus the live preview.
type BoardWidget struct {
	widget.BaseWidget
	session   *session.Session
	canvas    export.Canvas
	statusBar *widget.Label

	// OnChange is called after the committed shapes change.
	OnChange func(shapes []shape.Shape)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *session.Session, c export.Canvas) *BoardWidget {
	b := &BoardWidget{
		session:   s,
		canvas:    c,
		statusBar: widget.NewLabel(s.Status()),
	}
	s.OnPreview = func(shape.Shape) {
		b.Refresh()
		b.statusBar.SetText(s.Status())
	}
	s.OnChange = func(shapes []shape.Shape) {
		b.Refresh()
		b.statusBar.SetText(s.Status())
		if b.OnChange != nil {
			b.OnChange(shapes)
		}
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Session() *session.Session { return b.session }
func (b *BoardWidget) Canvas() export.Canvas     { return b.canvas }
func (b *BoardWidget) StatusBar() *widget.Label  { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) SetTool(k shape.Kind) {
	b.session.SetTool(k)
	b.statusBar.SetText(b.session.Status())
}

// SetStyle updates the attributes used by the next gesture. Invalid values
// are logged and leave the previous style in place.
func (b *BoardWidget) SetStyle(st shape.Style) {
	if err := b.session.SetStyle(st); err != nil {
		log.Printf("[UI] %v", err)
	}
}

func (b *BoardWidget) Undo()  { b.session.Undo() }
func (b *BoardWidget) Redo()  { b.session.Redo() }
func (b *BoardWidget) Clear() { b.session.Clear() }

// Cancel drops the gesture in progress, if any.
func (b *BoardWidget) Cancel() {
	b.session.Cancel()
	b.Refresh()
	b.statusBar.SetText(b.session.Status())
}

func toPoint(p fyne.Position) shape.Point {
	return shape.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.Begin(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.End()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.session.Move(toPoint(e.Position))
}

// DragEnd may arrive after MouseUp has already committed; End is then a no-op.
func (b *BoardWidget) DragEnd() {
	b.session.End()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := color.Color(color.Transparent)
	if c, ok := shape.RGBA(b.canvas.Background); ok {
		bg = c
	}
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(bg)
	r.background.Resize(fyne.NewSize(float32(b.canvas.Width), float32(b.canvas.Height)))
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, s := range r.board.session.Shapes() {
		objects = append(objects, shapeObjects(s, false)...)
	}
	if cur, ok := r.board.session.Current(); ok {
		objects = append(objects, shapeObjects(cur, true)...)
	}
	return objects
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	r.background.Resize(fyne.NewSize(float32(r.board.canvas.Width), float32(r.board.canvas.Height)))
}

// MinSize covers the canvas and every committed shape.
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	w, h := r.board.canvas.Width, r.board.canvas.Height
	if u := shape.Union(r.board.session.Shapes()); !u.Empty() {
		w = math.Max(w, u.X+u.Width)
		h = math.Max(h, u.Y+u.Height)
	}
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardWidgetRenderer) Destroy() {}
