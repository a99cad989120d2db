package codec

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// PNG is the default codec.
var PNG Codec = stdCodec{
	name: "png",
	encode: func(w io.Writer, img image.Image) error {
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	},
	decode: png.Decode,
}

// BMP writes uncompressed bitmaps: 24-bit when every pixel is opaque,
// 32-bit otherwise. The header carries no alpha mask, so decoding always
// yields opaque pixels.
var BMP Codec = stdCodec{
	name:   "bmp",
	encode: bmp.Encode,
	decode: bmp.Decode,
}

// TIFF writes deflate-compressed TIFF.
var TIFF Codec = stdCodec{
	name: "tiff",
	encode: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
	decode: tiff.Decode,
}
