package main

import (
	"github.com/osdxmb/artres"
	"github.com/osdxmb/artres/imagemagick"
	"github.com/osdxmb/artres/imaging"

	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// version will be set while building
var version string

// buildTime will be set while building
var buildTime string

const (
	envLogLevel = "ARTRES_LOG_LEVEL"
	envEngine   = "ARTRES_ENGINE"
)

func main() {
	var (
		background  string
		configPath  string
		engine      string
		showVersion bool
	)
	flag.StringVar(&background, "background", "transparent", "background color for fit mode: transparent, black or white")
	flag.StringVar(&background, "b", "transparent", "shorthand for -background")
	flag.StringVar(&configPath, "config", "", "optional TOML file overriding targets and background")
	flag.StringVar(&engine, "engine", getenv(envEngine, "imaging"), "resize engine: imaging or imagemagick")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("artres %s (built %s)\n", version, buildTime)
		return
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Output: os.Stdout,
		Level:  hclog.LevelFromString(getenv(envLogLevel, "INFO")),
	}).With("appVersion", version)

	err := initialize(logger, background, configPath, engine, flag.Arg(0))
	if err != nil {
		logger.Error("Failed to initialize. Exit now", "err", err)
		os.Exit(1)
	}
	logger.Info("Exit normally")
}

func initialize(logger hclog.Logger, background, configPath, engine, root string) error {
	conf := artres.DefaultConfig()
	if configPath != "" {
		var err error
		conf, err = artres.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	// An explicit -background flag wins over the config file value.
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "background" || f.Name == "b" {
			explicit = true
		}
	})
	if explicit || conf.Background == "" {
		conf.Background = background
	}

	bg, err := artres.ParseBackground(conf.Background)
	if err != nil {
		return err
	}

	resizer, err := newResizer(logger, engine)
	if err != nil {
		return err
	}

	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = filepath.Join(wd, "ART")
		if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
			return fmt.Errorf("no ART folder in the current directory, pass the root folder as an argument")
		}
	}

	p, err := artres.NewProcessor(artres.ProcessorConfig{
		RootDir:    root,
		Targets:    conf.Targets,
		Background: bg,
		Resizer:    resizer,
		Logger:     logger.Named("processor"),
	})
	if err != nil {
		return err
	}

	sum, err := p.Run()
	if err != nil {
		return err
	}

	logger.Info("Done",
		"found", sum.Found,
		"resized", sum.Resized,
		"skipped", sum.Skipped,
		"failed", sum.Failed)
	return nil
}

func newResizer(logger hclog.Logger, engine string) (artres.ImageResizer, error) {
	switch engine {
	case "imaging":
		return &imaging.ImageResizer{}, nil
	case "imagemagick":
		ver, err := imagemagick.Version()
		if err != nil {
			return nil, fmt.Errorf("imagemagick is not available: %w", err)
		}
		logger.Debug("Using ImageMagick", "version", ver)
		return &imagemagick.ImageResizer{}, nil
	}
	return nil, fmt.Errorf("unknown resize engine: %q", engine)
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
