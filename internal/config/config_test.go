package config

import (
	"os"
	"path/filepath"
	"testing"

	"LocalSketch/internal/export"
	"LocalSketch/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	tool, err := cfg.Tool()
	require.NoError(t, err)
	assert.Equal(t, shape.Freehand, tool)
	assert.Equal(t, export.Canvas{Width: 800, Height: 600, Background: "#ffffff"}, cfg.ExportCanvas())
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[canvas]
width = 1024
background = "none"

[defaults]
tool = "rect"
fill = "#ffcc00"
width = 4

[export]
dir = "/tmp/out"
format = "pdf"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, cfg.Canvas.Width)
	assert.Equal(t, 600.0, cfg.Canvas.Height)
	assert.Equal(t, shape.None, cfg.Canvas.Background)
	assert.Equal(t, shape.Style{Stroke: "#000000", Fill: "#ffcc00", Width: 4}, cfg.Style())
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)

	tool, err := cfg.Tool()
	require.NoError(t, err)
	assert.Equal(t, shape.Rectangle, tool)

	f, err := cfg.Format()
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"zero width":   "[canvas]\nwidth = 0",
		"bad colour":   "[canvas]\nbackground = \"#nothex\"",
		"bad tool":     "[defaults]\ntool = \"spray\"",
		"bad stroke":   "[defaults]\nwidth = -1",
		"bad format":   "[export]\nformat = \"gif\"",
		"syntax error": "[canvas\nwidth = 3",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(doc)
			require.Error(t, err)
			if name != "syntax error" {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}
