package export

import (
	"fmt"
	"io"

	"LocalSketch/internal/shape"

	"github.com/jung-kurt/gofpdf"
)

const (
	PDFFilename = "drawing.pdf"
	PDFMIMEType = "application/pdf"
)

// PDF draws shapes on a single page sized to the canvas, one point per
// canvas unit.
func PDF(w io.Writer, c Canvas, shapes []shape.Shape) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: c.Width, Ht: c.Height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	if bg, ok := shape.RGBA(c.Background); ok {
		p.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		p.Rect(0, 0, c.Width, c.Height, "F")
	}

	for _, s := range shapes {
		if s.Kind == shape.Freehand && len(s.Points) == 0 {
			continue
		}
		style, translucent := pdfStyle(p, s.Style)
		switch {
		case style == "":
			continue
		case s.Kind == shape.Line:
			// a line has no interior to fill
			if style != "F" {
				p.Line(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
			}
		case s.Kind == shape.Freehand:
			p.MoveTo(s.Points[0].X, s.Points[0].Y)
			for _, pt := range s.Points[1:] {
				p.LineTo(pt.X, pt.Y)
			}
			p.DrawPath(style)
		case s.Kind == shape.Rectangle:
			p.Rect(s.Origin.X, s.Origin.Y, s.Width, s.Height, style)
		case s.Kind == shape.Circle:
			p.Circle(s.Center.X, s.Center.Y, s.Radius, style)
		}
		if translucent {
			p.SetAlpha(1, "Normal")
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// pdfStyle loads the shape's colours into p and returns the gofpdf style
// string, or "" when neither stroke nor fill is visible. translucent reports
// whether an alpha state was set that the caller must reset.
func pdfStyle(p *gofpdf.Fpdf, st shape.Style) (style string, translucent bool) {
	alpha := 1.0
	if fill, ok := shape.RGBA(st.Fill); ok {
		p.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		alpha = float64(fill.A) / 255
		style += "F"
	}
	if stroke, ok := shape.RGBA(st.Stroke); ok {
		p.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
		p.SetLineWidth(st.Width)
		alpha = float64(stroke.A) / 255
		style = "D" + style
	}
	if style != "" && alpha < 1 {
		p.SetAlpha(alpha, "Normal")
		translucent = true
	}
	return style, translucent
}
