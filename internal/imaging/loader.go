package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrNotFound is returned by Load when the image file does not exist.
var ErrNotFound = errors.New("image file not found")

// Image is a decoded image together with what the decoder reported about it.
//
// Image embeds image.Image, so it can be passed anywhere a standard image is
// expected.
type Image struct {
	image.Image

	// Path is the path the image was loaded from.
	Path string

	// Format is the decoder name reported by image.Decode ("png", "jpeg", ...).
	Format string
}

// Load opens and decodes the image at path.
//
// The file handle is released before Load returns, on success and on every
// failure path. Nothing is cached: two calls with the same path read the file
// twice.
//
// # Errors
//
//   - Returns an error wrapping ErrNotFound if the file does not exist
//   - Returns an error if the path is a directory or cannot be read
//   - Returns an error if the content is not a supported image format
func Load(path string) (*Image, error) {
	if path == "" {
		return nil, errors.New("image path cannot be empty")
	}

	f, err := os.Open(path) // #nosec G304 - user-specified image path, intended to be read
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Image{Image: img, Path: path, Format: format}, nil
}

// ImageInfo contains metadata about a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder name, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha is true when samples carry an alpha channel. See
	// HasAlphaChannel for the rule.
	HasAlpha bool `json:"has_alpha"`
}

// Info extracts metadata from a loaded image.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func (img *Image) Info() ImageInfo {
	bounds := img.Bounds()

	colorDepth := "8-bit"
	switch img.Image.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		colorDepth = "16-bit"
	}

	return ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     img.Format,
		ColorDepth: colorDepth,
		HasAlpha:   HasAlphaChannel(img.Image),
	}
}

// HasAlphaChannel reports whether colors read from img carry four channels.
//
// The decision follows the decoded pixel layout:
//   - *image.NRGBA, *image.NRGBA64, *image.NYCbCrA -> always; the file stored
//     an alpha channel, even if every pixel is opaque
//   - *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK -> never
//   - *image.RGBA, *image.RGBA64, *image.Paletted and other types -> only when
//     some pixel is not fully opaque
//
// PNG and WebP files with an alpha channel decode to the first group, plain
// truecolor PNG and 24-bit BMP files decode to *image.RGBA.
func HasAlphaChannel(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return true
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	}
	return HasTransparency(img)
}

// HasTransparency reports whether any pixel of img is not fully opaque.
//
// Image types that know their opacity (all of the standard library's concrete
// types) answer directly; other implementations are scanned pixel by pixel.
func HasTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
