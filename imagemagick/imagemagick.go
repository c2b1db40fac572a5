package imagemagick

import (
	"fmt"
	"image/color"
	"os/exec"

	"github.com/osdxmb/artres"
)

type ImageResizer struct{}

func (r *ImageResizer) Resize(dst, src string, width, height uint, mode int, background color.NRGBA) error {
	size := fmt.Sprintf("%dx%d", width, height)

	args := []string{
		// use only the first frame
		src + "[0]",

		// reads and resets the EXIF image profile setting 'Orientation' and then performs the appropriate 90 degree rotation on the image to orient the image, for correct viewing
		"-auto-orient",
	}

	switch mode {
	case artres.ResizeModeFit:
		args = append(args,
			"-resize", size,
			"-background", colorSpec(background),
			"-gravity", "center",
			"-extent", size,
		)
	case artres.ResizeModeFill:
		crop := fmt.Sprintf("%dx%d+0+0", width, height)
		args = append(args,
			// ^ makes the image cover the whole area, aspect ratio preserved
			"-resize", size+"^",
			"-gravity", "center",
			"-crop", crop,
			"+repage", // completely remove/reset the virtual canvas meta-data from the images.
		)
	case artres.ResizeModeStretch:
		args = append(args, "-resize", size+"!")
	default:
		return fmt.Errorf("unknown resize mode: %d", mode)
	}

	// removes any ICM, EXIF, IPTC, or other profiles that might be present in the input and aren't needed in the output.
	args = append(args, "-strip", dst)

	_, err := exec.Command("convert", args...).Output()
	if err != nil {
		return fmt.Errorf("Failed to resize image: %w", err)
	}
	return nil
}

func colorSpec(c color.NRGBA) string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func Version() (string, error) {
	ver, err := exec.Command("convert", "-version").Output()
	if err != nil {
		return "", err
	}
	return string(ver), nil
}
