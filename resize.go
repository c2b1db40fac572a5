package artres

import (
	"fmt"
	"image/color"
)

const (
	// Maximum values of height and width given, aspect ratio preserved.
	// The rest of the canvas is filled with a background color.
	ResizeModeFit = 0

	// Minimum values of width and height given, aspect ratio preserved.
	// The image will be cut to fit it exactly.
	ResizeModeFill = 1

	// 	Width and height emphatically given, original aspect ratio ignored.
	ResizeModeStretch = 2
)

type ImageResizer interface {
	Resize(dst, src string, width, height uint, mode int, background color.NRGBA) error
}

// ParseResizeMode maps a mode name used in config files to its constant.
func ParseResizeMode(s string) (int, error) {
	switch s {
	case "fit":
		return ResizeModeFit, nil
	case "fill":
		return ResizeModeFill, nil
	case "stretch":
		return ResizeModeStretch, nil
	}
	return 0, fmt.Errorf("unknown resize mode: %q", s)
}

func modeName(mode int) string {
	switch mode {
	case ResizeModeFit:
		return "fit"
	case ResizeModeFill:
		return "fill"
	case ResizeModeStretch:
		return "stretch"
	}
	return "unknown"
}

var backgrounds = map[string]color.NRGBA{
	"transparent": {R: 0, G: 0, B: 0, A: 0},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
}

// ParseBackground maps a background color name to the color that fills
// the canvas around a fitted image.
func ParseBackground(name string) (color.NRGBA, error) {
	c, ok := backgrounds[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown background color: %q", name)
	}
	return c, nil
}
