// rastervector turns a scanned black/white raster into thin centerline
// vector geometry: binarize, skeletonize, prune, trace.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"rastervector/internal/pipeline"
)

const (
	appName    = "rastervector"
	appVersion = "1.0.0"
)

func main() {
	inPath := flag.String("in", "", "input raster image (png/jpg/gif/tiff/bmp)")
	outPath := flag.String("out", "", "processed bitmap output path")
	svgPath := flag.String("svg", "", "traced vector output path")
	overlayPath := flag.String("overlay", "", "skeleton segment overlay output path")
	configPath := flag.String("config", "", "TOML pipeline configuration")
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	flag.Parse()

	logger := initLogger(*debugMode)
	logger.WithFields(logrus.Fields{
		"version":    appVersion,
		"debug_mode": *debugMode,
	}).Info("Starting " + appName)

	if *inPath == "" {
		logger.Error("No input image given, use -in")
		flag.Usage()
		os.Exit(2)
	}
	if *outPath == "" && *svgPath == "" && *overlayPath == "" {
		logger.Error("No output requested, use -out, -svg or -overlay")
		os.Exit(2)
	}

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = pipeline.LoadConfig(*configPath)
		if err != nil {
			logger.WithError(err).Error("Failed to load configuration")
			os.Exit(1)
		}
	}

	p := pipeline.New(cfg, logger)
	if err := p.Run(*inPath, *outPath, *svgPath, *overlayPath); err != nil {
		logger.WithError(err).Error("Processing failed")
		os.Exit(1)
	}
	logger.Info("Done")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
