// Image file loading and saving for the vectorization pipeline
package imgio

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"rastervector/internal/binimg"
)

var supportedFormats = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Loader handles image file operations.
type Loader struct {
	log logrus.FieldLogger
}

func NewLoader(log logrus.FieldLogger) *Loader {
	return &Loader{log: log}
}

// Load reads and decodes an image file.
func (l *Loader) Load(path string) (image.Image, error) {
	if !isSupportedFormat(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	l.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Info("Image loaded")
	return img, nil
}

// Save encodes the bitmap into the file named by path; the format is
// chosen from the extension.
func (l *Loader) Save(b *binimg.Bitmap, path string) error {
	if !isSupportedFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}
	if err := imaging.Save(b.Image(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	l.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  b.Width(),
		"height": b.Height(),
	}).Info("Image saved")
	return nil
}

func isSupportedFormat(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}
