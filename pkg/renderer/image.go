package renderer

import (
	"image"
	"image/color"

	"github.com/atkvist/go-path-tracer/pkg/core"
)

// ToImage converts a row-major framebuffer into an RGBA image, clamping
// each channel to [0, 1]
func ToImage(framebuffer []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := framebuffer[j*width+i].Clamp(0, 1)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(c.X*255 + 0.5),
				G: uint8(c.Y*255 + 0.5),
				B: uint8(c.Z*255 + 0.5),
				A: 255,
			})
		}
	}

	return img
}
