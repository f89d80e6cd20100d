package texture

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a GPU texture handle.
type Texture struct {
	ID     uint32
	Target uint32
	Width  int
	Height int
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t != nil && t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// placeholder is the opaque black image uploaded in place of images that
// fail to load.
var placeholder = &image.NRGBA{
	Pix:    []uint8{0, 0, 0, 255},
	Stride: 4,
	Rect:   image.Rect(0, 0, 1, 1),
}

// Load2D loads path as a mipmapped, repeating 2D texture. If the image
// cannot be loaded the returned texture holds a 1x1 black image and the
// error is returned alongside it.
func Load2D(path string) (*Texture, error) {
	img, err := DecodeFile(path)
	if err != nil {
		img = placeholder
	}
	tex := Upload2D(img)
	return tex, err
}

// Upload2D uploads img as a mipmapped, repeating 2D texture.
func Upload2D(img *image.NRGBA) *Texture {
	tex := &Texture{Target: gl.TEXTURE_2D, Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// CubeFaces lists cubemap face images in +X, -X, +Y, -Y, +Z, -Z order.
type CubeFaces [6]string

// LoadCubemap loads six face images into a clamped cubemap. Faces that
// fail to load are replaced by a 1x1 black image; the returned error joins
// every failure.
func LoadCubemap(faces CubeFaces) (*Texture, error) {
	tex := &Texture{Target: gl.TEXTURE_CUBE_MAP}
	gl.GenTextures(1, &tex.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex.ID)

	var errs []error
	for i, path := range faces {
		img, err := DecodeFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("cubemap face %d: %w", i, err))
			img = placeholder
		}
		if i == 0 {
			tex.Width, tex.Height = img.Bounds().Dx(), img.Bounds().Dy()
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return tex, errors.Join(errs...)
}
