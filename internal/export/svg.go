// Package export renders a committed drawing into downloadable documents.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"LocalSketch/internal/shape"
)

const (
	SVGFilename = "drawing.svg"
	SVGMIMEType = "image/svg+xml"

	svgNamespace = "http://www.w3.org/2000/svg"
	layerID      = "layer"
)

// Canvas holds the static attributes of the drawing surface.
type Canvas struct {
	Width      float64
	Height     float64
	Background string // "" or "none" for a transparent canvas
}

type svgElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

type svgLayer struct {
	ID       string       `xml:"id,attr"`
	Elements []svgElement `xml:",any"`
}

type svgDocument struct {
	XMLName    xml.Name    `xml:"svg"`
	Xmlns      string      `xml:"xmlns,attr"`
	Width      string      `xml:"width,attr"`
	Height     string      `xml:"height,attr"`
	ViewBox    string      `xml:"viewBox,attr"`
	Background *svgElement `xml:"rect,omitempty"`
	Layer      svgLayer    `xml:"g"`
}

// SVG writes a standalone SVG document holding shapes in z-order.
func SVG(w io.Writer, c Canvas, shapes []shape.Shape) error {
	doc := svgDocument{
		Xmlns:   svgNamespace,
		Width:   num(c.Width),
		Height:  num(c.Height),
		ViewBox: strings.Join([]string{"0", "0", num(c.Width), num(c.Height)}, " "),
		Layer:   svgLayer{ID: layerID, Elements: make([]svgElement, 0, len(shapes))},
	}
	if c.Background != "" && c.Background != shape.None {
		doc.Background = &svgElement{
			XMLName: xml.Name{Local: "rect"},
			Attrs: []xml.Attr{
				attr("x", "0"), attr("y", "0"),
				attr("width", num(c.Width)), attr("height", num(c.Height)),
				attr("fill", c.Background),
			},
		}
	}
	for _, s := range shapes {
		el, ok := renderSVG(s)
		if !ok {
			continue
		}
		doc.Layer.Elements = append(doc.Layer.Elements, el)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// SVGDocument returns the SVG rendition as a byte slice.
func SVGDocument(c Canvas, shapes []shape.Shape) ([]byte, error) {
	var buf bytes.Buffer
	if err := SVG(&buf, c, shapes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSVG(s shape.Shape) (svgElement, bool) {
	var el svgElement
	switch s.Kind {
	case shape.Freehand:
		el = svgPath(s)
	case shape.Line:
		el = svgLine(s)
	case shape.Rectangle:
		el = svgRect(s)
	case shape.Circle:
		el = svgCircle(s)
	default:
		return svgElement{}, false
	}
	el.Attrs = append(el.Attrs,
		attr("id", s.ID),
		attr("stroke", s.Style.Stroke),
		attr("fill", s.Style.Fill),
		attr("stroke-width", num(s.Style.Width)),
	)
	return el, true
}

func svgPath(s shape.Shape) svgElement {
	var d strings.Builder
	for i, p := range s.Points {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString(" L")
		}
		d.WriteString(num(p.X))
		d.WriteByte(',')
		d.WriteString(num(p.Y))
	}
	return svgElement{
		XMLName: xml.Name{Local: "path"},
		Attrs:   []xml.Attr{attr("d", d.String())},
	}
}

func svgLine(s shape.Shape) svgElement {
	return svgElement{
		XMLName: xml.Name{Local: "line"},
		Attrs: []xml.Attr{
			attr("x1", num(s.Start.X)), attr("y1", num(s.Start.Y)),
			attr("x2", num(s.End.X)), attr("y2", num(s.End.Y)),
		},
	}
}

func svgRect(s shape.Shape) svgElement {
	return svgElement{
		XMLName: xml.Name{Local: "rect"},
		Attrs: []xml.Attr{
			attr("x", num(s.Origin.X)), attr("y", num(s.Origin.Y)),
			attr("width", num(s.Width)), attr("height", num(s.Height)),
		},
	}
}

func svgCircle(s shape.Shape) svgElement {
	return svgElement{
		XMLName: xml.Name{Local: "circle"},
		Attrs: []xml.Attr{
			attr("cx", num(s.Center.X)), attr("cy", num(s.Center.Y)),
			attr("r", num(s.Radius)),
		},
	}
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
