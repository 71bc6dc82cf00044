// Sequential raster-to-vector processing: load, binarize, morphology
// chain, optional vector output.
package pipeline

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"rastervector/internal/binarize"
	"rastervector/internal/binimg"
	"rastervector/internal/imgio"
	"rastervector/internal/morph"
	"rastervector/internal/vectorize"
)

// Pipeline runs the configured stage chain over one input image.
type Pipeline struct {
	cfg    Config
	log    logrus.FieldLogger
	loader *imgio.Loader
}

func New(cfg Config, log logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		log:    log,
		loader: imgio.NewLoader(log),
	}
}

// Run processes inPath and writes the requested outputs. Empty output
// paths skip that output.
func (p *Pipeline) Run(inPath, outPath, svgPath, overlayPath string) error {
	img, err := p.loader.Load(inPath)
	if err != nil {
		return err
	}

	threshold := p.cfg.Threshold
	if threshold == 0 {
		threshold = binarize.Threshold(img)
		p.log.WithField("threshold", threshold).Info("Otsu threshold selected")
	}
	bitmap := binimg.FromImage(img, threshold)
	if p.cfg.Invert {
		bitmap.Invert()
	}
	p.logStage("binarize", bitmap)

	engine := morph.New(bitmap)
	for _, spec := range p.cfg.Operations {
		op, passes, err := parseOp(spec, p.cfg.MaxPasses)
		if err != nil {
			return err
		}
		engine.MaxPasses = passes
		if !op(engine, p.passObserver(spec)) {
			p.log.WithField("operation", spec).Info("No pixels changed")
		}
		p.logStage(spec, engine.Result())
	}
	result := engine.Result()

	if outPath != "" {
		if err := p.loader.Save(result, outPath); err != nil {
			return err
		}
	}
	if svgPath != "" {
		if err := p.writeSVG(result, svgPath); err != nil {
			return err
		}
	}
	if overlayPath != "" {
		if err := p.WriteOverlay(result, overlayPath); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) writeSVG(b *binimg.Bitmap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := vectorize.TraceSVG(f, b); err != nil {
		return err
	}
	p.log.WithField("path", path).Info("Vector output written")
	return nil
}

// WriteOverlay writes the styled segment overlay for a processed bitmap.
func (p *Pipeline) WriteOverlay(b *binimg.Bitmap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	style := vectorize.OverlayStyle{
		Stroke:      p.cfg.SVG.Stroke,
		StrokeWidth: p.cfg.SVG.StrokeWidth,
	}
	if err := vectorize.WriteOverlay(f, b, style); err != nil {
		return err
	}
	p.log.WithField("path", path).Info("Overlay written")
	return nil
}

func (p *Pipeline) passObserver(op string) morph.ProgressObserver {
	return morph.ObserverFunc(func(done, total int) {
		p.log.WithFields(logrus.Fields{
			"operation": op,
			"changed":   done,
			"estimate":  total,
		}).Debug("Pass committed")
	})
}

func (p *Pipeline) logStage(stage string, b *binimg.Bitmap) {
	p.log.WithFields(logrus.Fields{
		"stage":      stage,
		"foreground": b.Count(),
		"components": b.Components(),
	}).Info("Stage complete")
}
