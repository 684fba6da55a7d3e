package renderer

import (
	"math"

	"github.com/atkvist/go-path-tracer/pkg/core"
)

// Camera maps pixel coordinates to world-space primary rays through a
// pinhole projection. Pixel row 0 is the top of the image and the camera
// looks down its local -Z axis.
type Camera struct {
	width, height int
	scale         float64 // tan(fov/2)
	aspect        float64
	cameraToWorld core.Mat4
	origin        core.Vec3
}

// NewCamera builds a camera from the render options
func NewCamera(opts core.Options) *Camera {
	return &Camera{
		width:         opts.Width,
		height:        opts.Height,
		scale:         math.Tan(opts.FOV * 0.5 * math.Pi / 180),
		aspect:        float64(opts.Width) / float64(opts.Height),
		cameraToWorld: opts.CameraToWorld,
		origin:        opts.CameraToWorld.MulPoint(core.NewVec3(0, 0, 0)),
	}
}

// GetRay generates the primary ray through the center of pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.aspect * c.scale
	y := (1 - 2*(float64(j)+0.5)/float64(c.height)) * c.scale

	direction := c.cameraToWorld.MulDirection(core.NewVec3(x, y, -1)).Normalize()
	return core.NewRay(c.origin, direction)
}
