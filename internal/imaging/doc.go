// Package imaging provides the image operations behind the color inspector.
//
// This package loads images from disk, samples pixel colors, counts the
// distinct colors of an image up to a cap, and crops regions for palette
// analysis. All operations work with standard Go image.Image types and use a
// coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Color Representation
//
// A ColorSample carries three channels (R, G, B) for opaque images and four
// (R, G, B, A) for images containing at least one non-opaque pixel. Channel
// values are 8-bit and non-premultiplied; 16-bit sources keep their high byte.
//
//   - Hex: 7-character lowercase format "#rrggbb" (alpha excluded)
//   - Tuple: "(r, g, b)" or "(r, g, b, a)"
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Palette Cap
//
// CountColors stops as soon as the number of distinct colors exceeds the
// requested maximum and reports that no palette is available, rather than
// returning a partial list.
//
// # Supported Formats
//
// PNG, JPEG and GIF through the standard library, BMP, TIFF and WebP through
// golang.org/x/image.
package imaging
