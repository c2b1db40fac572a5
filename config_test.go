package artres

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artres.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
background = "black"

[targets."ICON0.png"]
width  = 64
height = 64
mode   = "fit"

[targets."BG.png"]
width  = 320
height = 240
mode   = "stretch"
`)

	conf, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "black", conf.Background)
	assert.Equal(t, Target{Width: 64, Height: 64, Mode: ResizeModeFit}, conf.Targets["ICON0.png"])
	assert.Equal(t, Target{Width: 320, Height: 240, Mode: ResizeModeStretch}, conf.Targets["BG.png"])

	// targets not mentioned in the file keep their defaults
	assert.Equal(t, Target{Width: 640, Height: 448, Mode: ResizeModeFill}, conf.Targets["PIC1.png"])
}

func TestLoadConfigDefaultsOnly(t *testing.T) {
	path := writeConfig(t, "")

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestLoadConfigUnknownMode(t *testing.T) {
	path := writeConfig(t, `
[targets."ICON0.png"]
width  = 64
height = 64
mode   = "tile"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigZeroDimensions(t *testing.T) {
	path := writeConfig(t, `
[targets."ICON0.png"]
width  = 0
height = 64
mode   = "fit"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigUnknownBackground(t *testing.T) {
	path := writeConfig(t, `background = "purple"`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseBackground(t *testing.T) {
	c, err := ParseBackground("transparent")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, c)

	c, err = ParseBackground("black")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, c)

	c, err = ParseBackground("white")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = ParseBackground("purple")
	assert.Error(t, err)
}

func TestParseResizeMode(t *testing.T) {
	mode, err := ParseResizeMode("fit")
	require.NoError(t, err)
	assert.Equal(t, ResizeModeFit, mode)

	mode, err = ParseResizeMode("fill")
	require.NoError(t, err)
	assert.Equal(t, ResizeModeFill, mode)

	mode, err = ParseResizeMode("stretch")
	require.NoError(t, err)
	assert.Equal(t, ResizeModeStretch, mode)

	_, err = ParseResizeMode("tile")
	assert.Error(t, err)
}
