package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atkvist/go-path-tracer/pkg/core"
	"github.com/atkvist/go-path-tracer/pkg/geometry"
	"github.com/atkvist/go-path-tracer/pkg/loaders"
	"github.com/atkvist/go-path-tracer/pkg/material"
)

type optionsConfig struct {
	Width          int         `yaml:"width"`
	Height         int         `yaml:"height"`
	FOV            float64     `yaml:"fov"`
	MaxDepth       *int        `yaml:"maxDepth"`
	Background     *[3]float64 `yaml:"background"`
	Bias           float64     `yaml:"bias"`
	DiffuseSamples int         `yaml:"diffuseSamples"`
	Seed           *int64      `yaml:"seed"`
	Workers        int         `yaml:"workers"`
}

type cameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	LookAt [3]float64 `yaml:"lookAt"`
	Up     [3]float64 `yaml:"up"`
}

type emissionConfig struct {
	Scale float64 `yaml:"scale"`
}

type diffuseConfig struct {
	Albedo [3]float64 `yaml:"albedo"`
}

type specularConfig struct {
	Scale     float64 `yaml:"scale"`
	Shininess float64 `yaml:"shininess"`
}

type transmissionConfig struct {
	IOR   float64 `yaml:"ior"`
	Ratio float64 `yaml:"ratio"`
}

type materialConfig struct {
	Name         string              `yaml:"name"`
	Emission     *emissionConfig     `yaml:"emission"`
	Diffuse      *diffuseConfig      `yaml:"diffuse"`
	Specular     *specularConfig     `yaml:"specular"`
	Transmission *transmissionConfig `yaml:"transmission"`
}

type sphereConfig struct {
	Center   [3]float64  `yaml:"center"`
	Radius   float64     `yaml:"radius"`
	Color    *[3]float64 `yaml:"color"`
	Material string      `yaml:"material"`
}

type quadConfig struct {
	Corner   [3]float64  `yaml:"corner"`
	U        [3]float64  `yaml:"u"`
	V        [3]float64  `yaml:"v"`
	Color    *[3]float64 `yaml:"color"`
	Material string      `yaml:"material"`
}

type meshConfig struct {
	OBJ       string      `yaml:"obj"`
	Material  string      `yaml:"material"`
	Scale     float64     `yaml:"scale"`
	Translate *[3]float64 `yaml:"translate"`
}

type fileConfig struct {
	Options   optionsConfig    `yaml:"options"`
	Camera    *cameraConfig    `yaml:"camera"`
	Materials []materialConfig `yaml:"materials"`
	Spheres   []sphereConfig   `yaml:"spheres"`
	Quads     []quadConfig     `yaml:"quads"`
	Meshes    []meshConfig     `yaml:"meshes"`
}

// Load reads a YAML scene description. Relative mesh paths resolve against
// the scene file's directory. Zero-valued option fields keep their defaults.
func Load(path string) (*Scene, core.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Options{}, fmt.Errorf("reading scene file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, core.Options{}, fmt.Errorf("parsing scene file %q: %w", path, err)
	}

	opts := buildOptions(cfg)

	mats, err := buildMaterials(cfg.Materials)
	if err != nil {
		return nil, core.Options{}, err
	}

	s := &Scene{}
	if err := buildShapes(s, cfg, mats, filepath.Dir(path)); err != nil {
		return nil, core.Options{}, err
	}
	if len(s.Shapes) == 0 {
		return nil, core.Options{}, fmt.Errorf("scene file %q defines no shapes", path)
	}

	return s, opts, nil
}

func buildOptions(cfg fileConfig) core.Options {
	opts := core.DefaultOptions()
	oc := cfg.Options
	if oc.Width > 0 {
		opts.Width = oc.Width
	}
	if oc.Height > 0 {
		opts.Height = oc.Height
	}
	if oc.FOV > 0 {
		opts.FOV = oc.FOV
	}
	if oc.MaxDepth != nil {
		opts.MaxDepth = *oc.MaxDepth
	}
	if oc.Background != nil {
		opts.BackgroundColor = toVec3(*oc.Background)
	}
	if oc.Bias > 0 {
		opts.Bias = oc.Bias
	}
	if oc.DiffuseSamples > 0 {
		opts.DiffuseSamples = oc.DiffuseSamples
	}
	if oc.Seed != nil {
		opts.Seed = *oc.Seed
	}
	if oc.Workers > 0 {
		opts.Workers = oc.Workers
	}
	if cfg.Camera != nil {
		opts.CameraToWorld = core.NewLookAt(
			toVec3(cfg.Camera.Eye), toVec3(cfg.Camera.LookAt), toVec3(cfg.Camera.Up))
	}
	return opts
}

func buildMaterials(configs []materialConfig) (map[string]*material.Material, error) {
	mats := make(map[string]*material.Material, len(configs))
	for _, mc := range configs {
		if mc.Name == "" {
			return nil, fmt.Errorf("material without a name")
		}
		if _, exists := mats[mc.Name]; exists {
			return nil, fmt.Errorf("duplicate material %q", mc.Name)
		}

		m := &material.Material{Name: mc.Name}
		if mc.Emission != nil {
			m.Emission = &material.Emission{Scale: mc.Emission.Scale}
		}
		if mc.Diffuse != nil {
			m.Diffuse = &material.Diffuse{Albedo: toVec3(mc.Diffuse.Albedo)}
		}
		if mc.Specular != nil {
			m.Specular = &material.Specular{
				Scale:     mc.Specular.Scale,
				Shininess: mc.Specular.Shininess,
			}
		}
		if mc.Transmission != nil {
			m.Transmission = &material.Transmission{
				RefractiveIndex: mc.Transmission.IOR,
				Ratio:           mc.Transmission.Ratio,
			}
		}
		if m.Emission == nil && m.Diffuse == nil && m.Specular == nil && m.Transmission == nil {
			return nil, fmt.Errorf("material %q has no shading components", mc.Name)
		}
		mats[mc.Name] = m
	}
	return mats, nil
}

func buildShapes(s *Scene, cfg fileConfig, mats map[string]*material.Material, baseDir string) error {
	lookup := func(name string) (*material.Material, error) {
		m, ok := mats[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return m, nil
	}

	for _, sc := range cfg.Spheres {
		m, err := lookup(sc.Material)
		if err != nil {
			return err
		}
		s.Add(geometry.NewColoredSphere(toVec3(sc.Center), sc.Radius, colorOrWhite(sc.Color), m))
	}

	for _, qc := range cfg.Quads {
		m, err := lookup(qc.Material)
		if err != nil {
			return err
		}
		s.Add(geometry.NewQuad(toVec3(qc.Corner), toVec3(qc.U), toVec3(qc.V), colorOrWhite(qc.Color), m))
	}

	for _, mc := range cfg.Meshes {
		m, err := lookup(mc.Material)
		if err != nil {
			return err
		}

		scale := mc.Scale
		if scale == 0 {
			scale = 1
		}
		transform := core.NewScale(scale, scale, scale)
		if mc.Translate != nil {
			t := *mc.Translate
			transform = transform.Mul(core.NewTranslation(t[0], t[1], t[2]))
		}

		objPath := mc.OBJ
		if !filepath.IsAbs(objPath) {
			objPath = filepath.Join(baseDir, objPath)
		}
		mesh, err := loaders.LoadOBJ(objPath, transform, m)
		if err != nil {
			return err
		}
		s.Add(mesh)
	}

	return nil
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func colorOrWhite(c *[3]float64) core.Vec3 {
	if c == nil {
		return core.NewVec3(1, 1, 1)
	}
	return toVec3(*c)
}
