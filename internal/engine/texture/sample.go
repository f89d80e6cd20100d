package texture

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// SampleStrip picks n straight-alpha colors from the first row of img,
// evenly spaced from the left edge: sample i is taken at x = int(i/n * width).
func SampleStrip(img image.Image, n int) []mgl32.Vec4 {
	if n <= 0 {
		return nil
	}
	b := img.Bounds()
	width := b.Dx()
	colors := make([]mgl32.Vec4, n)
	for i := range colors {
		x := int(float32(i) / float32(n) * float32(width))
		c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y)).(color.NRGBA)
		colors[i] = mgl32.Vec4{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(c.A) / 255,
		}
	}
	return colors
}

// SampleStripFile decodes path and samples it. On failure it returns n
// opaque white colors along with the error.
func SampleStripFile(path string, n int) ([]mgl32.Vec4, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return White(n), err
	}
	return SampleStrip(img, n), nil
}

// White returns n opaque white colors.
func White(n int) []mgl32.Vec4 {
	if n <= 0 {
		return nil
	}
	colors := make([]mgl32.Vec4, n)
	for i := range colors {
		colors[i] = mgl32.Vec4{1, 1, 1, 1}
	}
	return colors
}
