// Package texture provides image decoding and texture processing utilities.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when data is not in a supported image format.
var ErrNotImage = errors.New("not a supported image")

// supported lists the sniffed extensions that have a registered decoder.
var supported = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

// Sniff returns the detected image type extension of data, or ErrNotImage.
func Sniff(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return "", ErrNotImage
	}
	if !supported[kind.Extension] {
		return "", fmt.Errorf("%w: %s", ErrNotImage, kind.MIME.Value)
	}
	return kind.Extension, nil
}

// Decode decodes data into a non-premultiplied RGBA image with its origin
// at the top left.
func Decode(data []byte) (*image.NRGBA, error) {
	ext, err := Sniff(data)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ext, err)
	}
	return ToNRGBA(img), nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ToNRGBA converts img to a tightly packed, straight-alpha RGBA image
// anchored at (0, 0). GL uploads and ring colors expect straight alpha.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok {
		if b.Min == (image.Point{}) && src.Stride == 4*b.Dx() {
			return src
		}
		// Row copy keeps the bytes exact.
		out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:(y+1)*out.Stride], src.Pix[off:off+4*b.Dx()])
		}
		return out
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
