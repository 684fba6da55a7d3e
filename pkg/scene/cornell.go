package scene

import (
	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box with quad walls, a ceiling
// light and two spheres, one mirror and one glass
func NewCornellScene() (*Scene, core.Options) {
	opts := core.DefaultOptions()
	opts.Width = 400
	opts.Height = 400 // Square aspect ratio for the box
	opts.FOV = 40
	opts.MaxDepth = 2
	opts.DiffuseSamples = 64
	opts.BackgroundColor = core.NewVec3(0, 0, 0)
	opts.CameraToWorld = core.NewLookAt(
		core.NewVec3(278, 278, -800), // Outside the box looking in
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
	)

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	lamp := material.NewEmissive(15.0)
	mirror := material.NewSpecular(0.85, 200)
	glass := material.NewTransparent(1.5, 0.1)

	wallColor := core.NewVec3(1, 1, 1)
	boxSize := 555.0

	s := &Scene{}
	s.Add(
		// Floor, ceiling, back wall (white)
		geometry.NewQuad(core.NewVec3(0, 0, 0),
			core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), wallColor, white),
		geometry.NewQuad(core.NewVec3(0, boxSize, 0),
			core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), wallColor, white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize),
			core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), wallColor, white),
		// Left wall (red), right wall (green)
		geometry.NewQuad(core.NewVec3(0, 0, 0),
			core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), wallColor, red),
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0),
			core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), wallColor, green),
	)

	// Ceiling light, slightly below the ceiling so it faces the floor
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.Add(geometry.NewQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.NewVec3(1, 1, 1),
		lamp,
	))

	s.Add(
		geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, mirror),
		geometry.NewSphere(core.NewVec3(370, 90, 351), 90, glass),
	)

	return s, opts
}
