package scene

import (
	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// NewDefaultScene creates a small open scene: a ground quad, a luminous
// "sun" sphere and three demo spheres (diffuse, mirror, glass) under a sky
// background
func NewDefaultScene() (*Scene, core.Options) {
	opts := core.DefaultOptions()
	opts.Width = 640
	opts.Height = 360 // 16:9 aspect ratio
	opts.FOV = 60
	opts.CameraToWorld = core.NewLookAt(
		core.NewVec3(0, 1.5, 6),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
	)

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	matte := material.NewDiffuse(core.NewVec3(0.7, 0.3, 0.3))
	mirror := material.NewSpecular(0.9, 100)
	glass := material.NewTransparent(1.5, 0.1)
	sun := material.NewEmissive(8.0)

	s := &Scene{}
	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, 0), 100, core.NewVec3(1, 1, 1), ground),
		geometry.NewColoredSphere(core.NewVec3(0, 12, -4), 4, core.NewVec3(1, 0.95, 0.85), sun),
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, matte),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, mirror),
		geometry.NewSphere(core.NewVec3(2.2, 1, 0), 1, glass),
	)

	return s, opts
}
