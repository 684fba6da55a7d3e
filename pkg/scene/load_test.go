package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
)

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullScene(t *testing.T) {
	path := writeSceneFile(t, `
options:
  width: 320
  height: 240
  fov: 55
  maxDepth: 4
  background: [0.1, 0.2, 0.3]
  diffuseSamples: 16
  seed: 7
camera:
  eye: [0, 1, 5]
  lookAt: [0, 1, 0]
  up: [0, 1, 0]
materials:
  - name: matte
    diffuse:
      albedo: [0.8, 0.2, 0.2]
  - name: lamp
    emission:
      scale: 12
  - name: glass
    specular:
      scale: 0.1
      shininess: 50
    transmission:
      ior: 1.5
      ratio: 0.2
spheres:
  - center: [0, 1, 0]
    radius: 1
    material: glass
  - center: [0, 5, 0]
    radius: 0.5
    color: [1, 0.9, 0.8]
    material: lamp
quads:
  - corner: [-5, 0, -5]
    u: [0, 0, 10]
    v: [10, 0, 0]
    material: matte
`)

	s, opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320, opts.Width)
	assert.Equal(t, 240, opts.Height)
	assert.Equal(t, 55.0, opts.FOV)
	assert.Equal(t, 4, opts.MaxDepth)
	assert.Equal(t, core.NewVec3(0.1, 0.2, 0.3), opts.BackgroundColor)
	assert.Equal(t, 16, opts.DiffuseSamples)
	assert.Equal(t, int64(7), opts.Seed)

	// Camera sits at the configured eye point
	eye := opts.CameraToWorld.MulPoint(core.NewVec3(0, 0, 0))
	assert.InDelta(t, 0.0, eye.X, 1e-9)
	assert.InDelta(t, 1.0, eye.Y, 1e-9)
	assert.InDelta(t, 5.0, eye.Z, 1e-9)

	require.Len(t, s.Shapes, 3)

	glassSphere, ok := s.Shapes[0].(*geometry.Sphere)
	require.True(t, ok)
	require.NotNil(t, glassSphere.Material.Specular)
	require.NotNil(t, glassSphere.Material.Transmission)
	assert.Equal(t, 1.5, glassSphere.Material.Transmission.RefractiveIndex)
	assert.Equal(t, 0.2, glassSphere.Material.Transmission.Ratio)
	assert.Equal(t, core.NewVec3(1, 1, 1), glassSphere.Color, "color defaults to white")

	lampSphere, ok := s.Shapes[1].(*geometry.Sphere)
	require.True(t, ok)
	require.NotNil(t, lampSphere.Material.Emission)
	assert.Equal(t, 12.0, lampSphere.Material.Emission.Scale)
	assert.Equal(t, core.NewVec3(1, 0.9, 0.8), lampSphere.Color)

	floor, ok := s.Shapes[2].(*geometry.Quad)
	require.True(t, ok)
	require.NotNil(t, floor.Material.Diffuse)
	assert.Equal(t, core.NewVec3(0.8, 0.2, 0.2), floor.Material.Diffuse.Albedo)
}

func TestLoad_DefaultsKeptWhenOmitted(t *testing.T) {
	path := writeSceneFile(t, `
materials:
  - name: matte
    diffuse:
      albedo: [0.5, 0.5, 0.5]
spheres:
  - center: [0, 0, -3]
    radius: 1
    material: matte
`)

	_, opts, err := Load(path)
	require.NoError(t, err)

	defaults := core.DefaultOptions()
	assert.Equal(t, defaults.Width, opts.Width)
	assert.Equal(t, defaults.Height, opts.Height)
	assert.Equal(t, defaults.MaxDepth, opts.MaxDepth)
	assert.Equal(t, defaults.BackgroundColor, opts.BackgroundColor)
	assert.Equal(t, defaults.Seed, opts.Seed)
}

func TestLoad_ZeroOverridesApply(t *testing.T) {
	// maxDepth 0, black background and seed 0 are all meaningful values
	// that must not be confused with absent keys
	path := writeSceneFile(t, `
options:
  maxDepth: 0
  background: [0, 0, 0]
  seed: 0
materials:
  - name: matte
    diffuse:
      albedo: [0.5, 0.5, 0.5]
spheres:
  - center: [0, 0, -3]
    radius: 1
    material: matte
`)

	_, opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, opts.MaxDepth)
	assert.Equal(t, core.NewVec3(0, 0, 0), opts.BackgroundColor)
	assert.Equal(t, int64(0), opts.Seed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown material",
			content: `
spheres:
  - center: [0, 0, 0]
    radius: 1
    material: nope
`,
			wantErr: `unknown material "nope"`,
		},
		{
			name: "material without name",
			content: `
materials:
  - diffuse:
      albedo: [1, 1, 1]
`,
			wantErr: "material without a name",
		},
		{
			name: "duplicate material",
			content: `
materials:
  - name: matte
    diffuse:
      albedo: [1, 1, 1]
  - name: matte
    diffuse:
      albedo: [0, 0, 0]
`,
			wantErr: `duplicate material "matte"`,
		},
		{
			name: "empty material",
			content: `
materials:
  - name: hollow
`,
			wantErr: `material "hollow" has no shading components`,
		},
		{
			name:    "no shapes",
			content: `options: {width: 100}`,
			wantErr: "defines no shapes",
		},
		{
			name:    "invalid yaml",
			content: "options: [not: a: mapping",
			wantErr: "parsing scene file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSceneFile(t, tt.content)
			_, _, err := Load(path)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr),
				"error %q should contain %q", err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scene file")
}
