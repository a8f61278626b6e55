package validate

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// SupportedExtensions lists the texture formats ImageProber can read
var SupportedExtensions = []string{".tga", ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp", ".gif"}

// ImageProber reads image dimensions from file headers
type ImageProber struct{}

// NewImageProber creates a new image prober
func NewImageProber() *ImageProber {
	return &ImageProber{}
}

// Probe opens path, decodes the image header and returns its size.
// The file is closed before Probe returns, including on decode errors.
func (p *ImageProber) Probe(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, err := decodeConfig(f, filepath.Ext(path))
	if err != nil {
		return 0, 0, fmt.Errorf("cannot decode %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}

// decodeConfig picks a decoder by extension
func decodeConfig(r io.Reader, ext string) (image.Config, error) {
	switch strings.ToLower(ext) {
	case ".tga":
		return tga.DecodeConfig(r)
	case ".png":
		return png.DecodeConfig(r)
	case ".jpg", ".jpeg":
		return jpeg.DecodeConfig(r)
	case ".gif":
		return gif.DecodeConfig(r)
	case ".bmp":
		return bmp.DecodeConfig(r)
	case ".tif", ".tiff":
		return tiff.DecodeConfig(r)
	case ".webp":
		return webp.DecodeConfig(r)
	}
	return image.Config{}, fmt.Errorf("unsupported image format %q", ext)
}
