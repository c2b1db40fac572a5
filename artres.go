package artres

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	_ "image/png"

	"github.com/hashicorp/go-hclog"
)

// Target describes the dimensions an artwork file must end up with and
// the resize mode that gets it there.
type Target struct {
	Width  uint
	Height uint
	Mode   int
}

// DefaultTargets returns the dimension requirements of the menu shell.
func DefaultTargets() map[string]Target {
	return map[string]Target{
		"ICON0.png": {Width: 128, Height: 128, Mode: ResizeModeFit},
		"PIC1.png":  {Width: 640, Height: 448, Mode: ResizeModeFill},
	}
}

type ProcessorConfig struct {
	RootDir    string
	Targets    map[string]Target
	Background color.NRGBA
	Resizer    ImageResizer
	Logger     hclog.Logger
}

// Processor walks a directory tree and resizes every file whose name has
// a configured target. Files are overwritten in place.
type Processor struct {
	conf *ProcessorConfig
}

type Summary struct {
	Found   int
	Resized int
	Skipped int
	Failed  int
}

func NewProcessor(conf ProcessorConfig) (*Processor, error) {
	if conf.Resizer == nil {
		return nil, fmt.Errorf("no image resizer configured")
	}
	if conf.Logger == nil {
		conf.Logger = hclog.NewNullLogger()
	}
	if conf.Targets == nil {
		conf.Targets = DefaultTargets()
	}

	return &Processor{conf: &conf}, nil
}

// Run processes every matching file under the root folder. A file that
// cannot be read or resized is logged and counted as failed, the walk
// continues. A missing root folder is the only fatal error.
func (p *Processor) Run() (Summary, error) {
	var sum Summary

	fi, err := os.Stat(p.conf.RootDir)
	if err != nil {
		return sum, fmt.Errorf("root folder: %w", err)
	}
	if !fi.IsDir() {
		return sum, fmt.Errorf("root folder: %s is not a directory", p.conf.RootDir)
	}

	p.conf.Logger.Info("Processing artwork", "root", p.conf.RootDir)

	err = filepath.WalkDir(p.conf.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			p.conf.Logger.Error("Failed to walk", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		target, ok := p.conf.Targets[d.Name()]
		if !ok {
			return nil
		}
		sum.Found++
		p.processFile(path, target, &sum)
		return nil
	})
	if err != nil {
		return sum, err
	}

	if sum.Found == 0 {
		p.conf.Logger.Info("No matching artwork files found", "root", p.conf.RootDir)
	}
	return sum, nil
}

func (p *Processor) processFile(path string, target Target, sum *Summary) {
	logger := p.conf.Logger.With("path", path)

	w, h, err := decodeDimensions(path)
	if err != nil {
		logger.Error("Failed to read image", "error", err)
		sum.Failed++
		return
	}

	if uint(w) == target.Width && uint(h) == target.Height {
		logger.Debug("Already at target dimensions")
		sum.Skipped++
		return
	}

	logger.Info("Resizing",
		"from", fmt.Sprintf("%dx%d", w, h),
		"to", fmt.Sprintf("%dx%d", target.Width, target.Height),
		"mode", modeName(target.Mode))

	err = p.conf.Resizer.Resize(path, path, target.Width, target.Height, target.Mode, p.conf.Background)
	if err != nil {
		logger.Error("Failed to resize", "error", err)
		sum.Failed++
		return
	}
	sum.Resized++
}

func decodeDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	conf, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return conf.Width, conf.Height, nil
}
