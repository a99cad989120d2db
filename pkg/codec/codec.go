// Package codec encodes and decodes raw RGBA8 pixel buffers to lossless
// image file formats.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Codec converts between a row-major RGBA8 buffer (len == w*h*4) and an
// encoded image file. Buffers hold straight (non-premultiplied) alpha, so
// RGB values survive a round trip even where alpha is below 255.
type Codec interface {
	Name() string
	Encode(pix []uint8, w, h int) ([]byte, error)
	Decode(data []byte) (pix []uint8, w, h int, err error)
}

// CodecError records a failed encode or decode.
type CodecError struct {
	Format string
	Op     string // "encode" or "decode"
	Err    error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Format, e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// stdCodec adapts an image encoder/decoder pair to Codec.
type stdCodec struct {
	name   string
	encode func(w io.Writer, img image.Image) error
	decode func(r io.Reader) (image.Image, error)
}

func (c stdCodec) Name() string { return c.name }

func (c stdCodec) Encode(pix []uint8, w, h int) ([]byte, error) {
	img, err := wrapNRGBA(pix, w, h)
	if err != nil {
		return nil, &CodecError{Format: c.name, Op: "encode", Err: err}
	}
	var buf bytes.Buffer
	if err := c.encode(&buf, img); err != nil {
		return nil, &CodecError{Format: c.name, Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

func (c stdCodec) Decode(data []byte) ([]uint8, int, int, error) {
	img, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, &CodecError{Format: c.name, Op: "decode", Err: err}
	}
	out := toNRGBA(img)
	return out.Pix, out.Rect.Dx(), out.Rect.Dy(), nil
}

// wrapNRGBA views pix as an image without copying.
func wrapNRGBA(pix []uint8, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("buffer is %d bytes, want %d for %dx%d", len(pix), w*h*4, w, h)
	}
	return &image.NRGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

// toNRGBA returns img as a tightly packed *image.NRGBA with a zero origin.
func toNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// ForPath picks a codec from the file extension. An empty extension selects
// PNG; an unknown one is ErrUnsupportedFormat.
func ForPath(path string) (Codec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Ratio is the compression ratio raw/encoded. It is 0 when encoded is 0.
func Ratio(raw, encoded int) float64 {
	if encoded <= 0 {
		return 0
	}
	return float64(raw) / float64(encoded)
}
