package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"LocalSketch/internal/shape"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Format selects the document type produced by Write.
type Format int

const (
	FormatSVG Format = iota
	FormatPDF
	FormatPNG
)

// Formats lists every format in the order offered to users.
var Formats = []Format{FormatSVG, FormatPDF, FormatPNG}

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatPDF:
		return "pdf"
	case FormatPNG:
		return "png"
	default:
		return "unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(s), "."), f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename is the fixed default download name for the format.
func (f Format) Filename() string {
	switch f {
	case FormatPDF:
		return PDFFilename
	case FormatPNG:
		return PNGFilename
	default:
		return SVGFilename
	}
}

func (f Format) MIMEType() string {
	switch f {
	case FormatPDF:
		return PDFMIMEType
	case FormatPNG:
		return PNGMIMEType
	default:
		return SVGMIMEType
	}
}

// Write renders shapes in the given format.
func Write(w io.Writer, f Format, c Canvas, shapes []shape.Shape) error {
	switch f {
	case FormatSVG:
		return SVG(w, c, shapes)
	case FormatPDF:
		return PDF(w, c, shapes)
	case FormatPNG:
		return PNG(w, c, shapes)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
}
