package ui

import (
	"image/color"
	"strings"

	"LocalSketch/internal/export"
	"LocalSketch/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var palette = []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ffffff"}

var toolNames = []string{
	shape.Freehand.String(),
	shape.Line.String(),
	shape.Rectangle.String(),
	shape.Circle.String(),
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Value    string
	OnTapped func(string)
}

func newColorSwatch(value string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Value: value, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill, _ := shapeColor(s.Value, false)
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	objects := []fyne.CanvasObject{rect, border}
	if s.Value == shape.None {
		slash := canvas.NewLine(color.NRGBA{R: 200, A: 255})
		slash.Position1 = fyne.NewPos(0, 24)
		slash.Position2 = fyne.NewPos(24, 0)
		objects = append(objects, container.NewWithoutLayout(slash))
	}
	return widget.NewSimpleRenderer(container.NewStack(objects...))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Value)
	}
}

// Toolbar holds the controls that feed tool, style and commands into a board.
type Toolbar struct {
	board  *BoardWidget
	format export.Format
	style  shape.Style

	// OnExport is called with the format chosen in the format selector.
	OnExport func(f export.Format)
}

func NewToolbar(board *BoardWidget, format export.Format) *Toolbar {
	return &Toolbar{
		board:  board,
		format: format,
		style:  board.Session().Style(),
	}
}

func (t *Toolbar) setStroke(c string) {
	t.style.Stroke = c
	t.board.SetStyle(t.style)
}

func (t *Toolbar) setFill(c string) {
	t.style.Fill = c
	t.board.SetStyle(t.style)
}

func (t *Toolbar) setWidth(w float64) {
	t.style.Width = w
	t.board.SetStyle(t.style)
}

// Build lays out the toolbar widgets.
func (t *Toolbar) Build() fyne.CanvasObject {
	tools := widget.NewSelect(toolNames, func(name string) {
		if k, err := shape.ParseKind(name); err == nil {
			t.board.SetTool(k)
		}
	})
	tools.SetSelected(t.board.Session().Tool().String())

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), t.board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), t.board.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), t.board.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if t.OnExport != nil {
				t.OnExport(t.format)
			}
		}),
	)

	formatNames := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		formatNames = append(formatNames, strings.ToUpper(f.String()))
	}
	formats := widget.NewSelect(formatNames, func(name string) {
		if f, err := export.ParseFormat(name); err == nil {
			t.format = f
		}
	})
	formats.SetSelected(strings.ToUpper(t.format.String()))

	strokeBox := container.NewHBox()
	for _, c := range palette {
		strokeBox.Add(newColorSwatch(c, t.setStroke))
	}
	fillBox := container.NewHBox(newColorSwatch(shape.None, t.setFill))
	for _, c := range palette {
		fillBox.Add(newColorSwatch(c, t.setFill))
	}

	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(t.style.Width)
	strokeSlider.OnChanged = t.setWidth
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		actions,
		formats,
		widget.NewSeparator(),
		widget.NewLabel("Stroke:"),
		strokeBox,
		widget.NewLabel("Fill:"),
		fillBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
