package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

var (
	// ErrInputNotFound is returned when an input path does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrDecode is returned when an input file cannot be decoded as an image.
	ErrDecode = errors.New("failed to decode image")

	// ErrWrite is returned when the output cannot be written.
	ErrWrite = errors.New("failed to write output")
)

// Load reads an image from disk and normalizes it to NRGBA.
//
// Parameters:
//   - role: Human-readable name for error messages ("template", "design").
//   - path: File path. PNG, JPEG and GIF are supported.
//
// # Errors
//
//   - ErrInputNotFound if the path does not exist
//   - ErrDecode if the file cannot be opened or is not a supported image
func Load(role, path string) (*image.NRGBA, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s file %s", ErrInputNotFound, role, path)
		}
		return nil, fmt.Errorf("%w: %s file %s: %v", ErrDecode, role, path, err)
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s file %s: %v", ErrDecode, role, path, err)
	}

	return imaging.Clone(img), nil
}

// Save writes img to path as PNG, creating parent directories as needed.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
		}
	}

	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	return nil
}

// ImageInfo contains metadata about an image file, read from its header
// without decoding the pixel data.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder name reported by the image package: "png", "jpeg" or "gif".
	Format string `json:"format"`

	// HasAlpha indicates whether the color model carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect returns dimensions and format information for the image at path.
//
// Errors follow Load: ErrInputNotFound for a missing file, ErrDecode for
// anything that is not a recognized image.
func Inspect(path string) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		HasAlpha:      hasAlpha(cfg.ColorModel),
		FileSizeBytes: stat.Size(),
	}, nil
}

func hasAlpha(m color.Model) bool {
	// Paletted images report a color.Palette; any entry below full opacity
	// makes the image transparent-capable.
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}

	switch m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}
