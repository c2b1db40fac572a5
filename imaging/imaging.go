// Package imaging implements the default resize engine on top of the
// pure Go disintegration/imaging library. No external programs needed.
package imaging

import (
	"fmt"
	"image"
	"image/color"

	resizer "github.com/disintegration/imaging"

	"github.com/osdxmb/artres"
)

type ImageResizer struct{}

func (r *ImageResizer) Resize(dst, src string, width, height uint, mode int, background color.NRGBA) error {
	img, err := resizer.Open(src, resizer.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}

	w, h := int(width), int(height)

	var out *image.NRGBA
	switch mode {
	case artres.ResizeModeFit:
		out = fit(img, w, h, background)
	case artres.ResizeModeFill:
		out = resizer.Fill(img, w, h, resizer.Center, resizer.Lanczos)
	case artres.ResizeModeStretch:
		out = resizer.Resize(img, w, h, resizer.Lanczos)
	default:
		return fmt.Errorf("unknown resize mode: %d", mode)
	}

	if err := resizer.Save(out, dst); err != nil {
		return fmt.Errorf("failed to save %s: %w", dst, err)
	}
	return nil
}

// fit scales the image to the largest size that still fits inside the
// target bounds and centers it on a canvas of the exact target size.
// resizer.Fit is not used here because it never scales up.
func fit(img image.Image, width, height int, background color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())

	scale := float64(height) / sh
	if float64(width)/sw < scale {
		scale = float64(width) / sw
	}

	w := int(sw * scale)
	if w < 1 {
		w = 1
	}
	h := int(sh * scale)
	if h < 1 {
		h = 1
	}

	scaled := resizer.Resize(img, w, h, resizer.Lanczos)
	canvas := resizer.New(width, height, background)
	return resizer.PasteCenter(canvas, scaled)
}
