package core

// Options is the read-only render configuration. It is constructed once
// before rendering and passed by value; nothing mutates it afterwards.
type Options struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	FOV             float64 // Vertical field of view in degrees
	MaxDepth        int     // Maximum recursion depth for bounced rays
	BackgroundColor Vec3    // Color returned for misses and depth cutoff
	CameraToWorld   Mat4    // Camera-to-world transform
	Bias            float64 // Epsilon offset for secondary-ray origins
	DiffuseSamples  int     // Hemisphere samples per diffuse bounce
	Seed            int64   // Base seed for the per-row random generators
	Workers         int     // Parallel render workers (0 = CPU count)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           640,
		Height:          480,
		FOV:             90,
		MaxDepth:        3,
		BackgroundColor: NewVec3(0.235294, 0.67451, 0.843137),
		CameraToWorld:   IdentityMat4(),
		Bias:            1e-4,
		DiffuseSamples:  128,
		Seed:            42,
		Workers:         0,
	}
}
