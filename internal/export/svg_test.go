package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"LocalSketch/internal/shape"

	"github.com/srwiley/oksvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCanvas = Canvas{Width: 200, Height: 100, Background: "#ffffff"}

var testStyle = shape.Style{Stroke: "#ff0000", Fill: shape.None, Width: 3}

// parsedDoc mirrors the exported structure closely enough to count shapes.
type parsedDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Rects   []struct {
		Fill string `xml:"fill,attr"`
	} `xml:"rect"`
	Layer struct {
		ID       string `xml:"id,attr"`
		Elements []struct {
			XMLName xml.Name
			ID      string `xml:"id,attr"`
		} `xml:",any"`
	} `xml:"g"`
}

func parse(t *testing.T, doc []byte) parsedDoc {
	t.Helper()
	var p parsedDoc
	require.NoError(t, xml.Unmarshal(doc, &p))
	return p
}

func TestSVGEmptyCanvas(t *testing.T) {
	doc, err := SVGDocument(testCanvas, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), xml.Header))

	p := parse(t, doc)
	assert.Equal(t, "200", p.Width)
	assert.Equal(t, "100", p.Height)
	assert.Equal(t, "0 0 200 100", p.ViewBox)
	assert.Equal(t, "layer", p.Layer.ID)
	assert.Empty(t, p.Layer.Elements)
	require.Len(t, p.Rects, 1)
	assert.Equal(t, "#ffffff", p.Rects[0].Fill)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 200.0, icon.ViewBox.W)
	assert.Equal(t, 100.0, icon.ViewBox.H)
}

func TestSVGShapesInCommitOrder(t *testing.T) {
	line := shape.Shape{ID: "a", Kind: shape.Line, Style: testStyle, Start: shape.Point{X: 1, Y: 2}, End: shape.Point{X: 3, Y: 4}}
	circle := shape.NewCircle(testStyle, shape.Point{X: 50, Y: 50}, 10)
	circle.ID = "b"

	doc, err := SVGDocument(testCanvas, []shape.Shape{line, circle})
	require.NoError(t, err)

	p := parse(t, doc)
	require.Len(t, p.Layer.Elements, 2)
	assert.Equal(t, "line", p.Layer.Elements[0].XMLName.Local)
	assert.Equal(t, "a", p.Layer.Elements[0].ID)
	assert.Equal(t, "circle", p.Layer.Elements[1].XMLName.Local)
	assert.Equal(t, "b", p.Layer.Elements[1].ID)

	_, err = oksvg.ReadIconStream(bytes.NewReader(doc))
	require.NoError(t, err)
}

func TestSVGElementAttributes(t *testing.T) {
	path := shape.Shape{ID: "p", Kind: shape.Freehand, Style: testStyle,
		Points: []shape.Point{{X: 0, Y: 0}, {X: 1.5, Y: 1}, {X: 2, Y: 2}}}
	rect := shape.NewRectangle(shape.Style{Stroke: "black", Fill: "#00ff00", Width: 1},
		shape.Point{X: 50, Y: 50}, shape.Point{X: 10, Y: 10})
	rect.ID = "r"

	doc, err := SVGDocument(Canvas{Width: 10, Height: 10}, []shape.Shape{path, rect})
	require.NoError(t, err)
	s := string(doc)

	assert.Contains(t, s, `d="M0,0 L1.5,1 L2,2"`)
	assert.Contains(t, s, `x="10" y="10" width="40" height="40"`)
	assert.Contains(t, s, `stroke="#ff0000" fill="none" stroke-width="3"`)
	assert.Contains(t, s, `fill="#00ff00"`)

	// no background rect for a transparent canvas
	assert.Empty(t, parse(t, doc).Rects)
}

func TestSVGDoesNotModifyShapes(t *testing.T) {
	shapes := []shape.Shape{{ID: "p", Kind: shape.Freehand, Style: testStyle, Points: []shape.Point{{X: 1, Y: 1}}}}
	_, err := SVGDocument(testCanvas, shapes)
	require.NoError(t, err)
	assert.Equal(t, []shape.Point{{X: 1, Y: 1}}, shapes[0].Points)
}
